//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/commands"
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
)

// StubConvertCommand is a stub implementation of commands.Convert.
type StubConvertCommand struct {
	ExecuteCallCount int
	ExecuteResult    string
	ExecuteErr       error
	LastInput        string
	LastOpts         entities.ConversionOptions
}

var _ commands.Convert = (*StubConvertCommand)(nil)

func (s *StubConvertCommand) Execute(
	input string,
	opts entities.ConversionOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastInput = input
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return "", s.ExecuteErr
	}
	return s.ExecuteResult, nil
}
