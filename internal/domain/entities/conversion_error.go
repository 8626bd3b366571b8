package entities

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one member of the closed set of conversion failures.
type ErrorKind int

const (
	// UsageError means the CLI was invoked with the wrong arguments or flags.
	UsageError ErrorKind = iota + 1
	// ParseError means the wrapped input is not well-formed XML.
	ParseError
	// StructureError means a top-level node is not a <dependency> element.
	StructureError
	// MissingFieldError means a required field is absent or has no text.
	MissingFieldError
)

// Sentinels matched by errors.Is against any ConversionError of the same kind.
var (
	ErrUsage        = errors.New("usage error")
	ErrParse        = errors.New("parse error")
	ErrStructure    = errors.New("not a dependency")
	ErrMissingField = errors.New("missing field")
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case UsageError:
		return "UsageError"
	case ParseError:
		return "ParseError"
	case StructureError:
		return "StructureError"
	case MissingFieldError:
		return "MissingFieldError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UsageError:
		return ErrUsage
	case ParseError:
		return ErrParse
	case StructureError:
		return ErrStructure
	case MissingFieldError:
		return ErrMissingField
	default:
		return nil
	}
}

// ConversionError is the single error type returned by the convert command.
type ConversionError struct {
	Kind    ErrorKind
	Index   int    // 1-based position of the offending dependency, 0 when not applicable
	Element string // offending node name (StructureError)
	Field   string // missing field name (MissingFieldError)
	Detail  string // free-form detail (UsageError)
	Err     error  // underlying cause, if any
}

// NewUsageError builds a UsageError with the given detail.
func NewUsageError(detail string) *ConversionError {
	return &ConversionError{Kind: UsageError, Detail: detail}
}

// NewParseError wraps a decoder failure.
func NewParseError(cause error) *ConversionError {
	return &ConversionError{Kind: ParseError, Err: cause}
}

// NewStructureError reports a top-level node that is not a dependency.
func NewStructureError(index int, element string) *ConversionError {
	return &ConversionError{Kind: StructureError, Index: index, Element: element}
}

// NewMissingFieldError reports a required field that is absent or empty.
func NewMissingFieldError(index int, field string) *ConversionError {
	return &ConversionError{Kind: MissingFieldError, Index: index, Field: field}
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case UsageError:
		return fmt.Sprintf("%s: %s", ErrUsage, e.Detail)
	case ParseError:
		if e.Err == nil {
			return ErrParse.Error()
		}
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	case StructureError:
		return fmt.Sprintf("%s: dependency #%d is %s", ErrStructure, e.Index, e.Element)
	case MissingFieldError:
		return fmt.Sprintf("%s %q in dependency #%d", ErrMissingField, e.Field, e.Index)
	default:
		return fmt.Sprintf("conversion failed (%s)", e.Kind)
	}
}

// Unwrap exposes the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *ConversionError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}
