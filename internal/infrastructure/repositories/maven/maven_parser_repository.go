package maven

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
)

const (
	syntheticRoot = "p"

	xmlnsPrefix  = "xmlns"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	dependencyTag = "dependency"
	groupIDTag    = "groupId"
	artifactIDTag = "artifactId"
	versionTag    = "version"
	scopeTag      = "scope"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
	commentNode
	instructionNode
)

// node is a minimal DOM: just enough to walk the synthetic root's children
// in document order with comments and text kept in place.
type node struct {
	kind     nodeKind
	name     string
	data     string
	children []*node
}

// ParserRepository reads Maven <dependency> elements with encoding/xml.
type ParserRepository struct{}

var _ repositories.ParserRepository = (*ParserRepository)(nil)

// NewParserRepository creates a new Maven ParserRepository.
func NewParserRepository() *ParserRepository {
	return &ParserRepository{}
}

// Parse strips newlines and spaces, wraps the input in a synthetic root,
// decodes it completely and then walks the root's children.
func (it *ParserRepository) Parse(
	raw string,
	opts entities.ConversionOptions,
) ([]entities.Dependency, error) {
	wrapped := wrap(curate(raw))

	root, err := decode(wrapped)
	if err != nil {
		return nil, entities.NewParseError(err)
	}

	var dependencies []entities.Dependency
	index := 0
	for _, child := range root.children {
		switch child.kind {
		case commentNode:
			continue
		case textNode:
			if strings.TrimSpace(child.data) == "" {
				continue
			}
		case elementNode, instructionNode:
		}

		index++
		dep, depErr := readDependency(index, child, opts)
		if depErr != nil {
			return nil, depErr
		}
		dependencies = append(dependencies, dep)
	}

	logger.Debugf("Parsed %d dependencies from %d bytes of input", len(dependencies), len(raw))
	return dependencies, nil
}

// curate removes every newline and every space. Spaces inside values are lost too.
func curate(raw string) string {
	return strings.NewReplacer("\n", "", " ", "").Replace(raw)
}

func wrap(curated string) string {
	return "<" + syntheticRoot + ">" + curated + "</" + syntheticRoot + ">"
}

// decode reads the whole document, so well-formedness is checked before any
// structural rule is applied.
func decode(document string) (*node, error) {
	decoder := xml.NewDecoder(strings.NewReader(document))

	var root *node
	var stack []*node
	scopes := []map[string]bool{{xmlNamespace: true}}
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var current *node
		if len(stack) > 0 {
			current = stack[len(stack)-1]
		}

		switch t := token.(type) {
		case xml.StartElement:
			scope := declare(scopes[len(scopes)-1], t.Attr)
			if undeclared := undeclaredPrefix(scope, t); undeclared != "" {
				return nil, fmt.Errorf("unknown namespace prefix %q in <%s:%s>", undeclared, undeclared, t.Name.Local)
			}
			scopes = append(scopes, scope)
			element := &node{kind: elementNode, name: t.Name.Local}
			if current == nil {
				if root != nil {
					return nil, fmt.Errorf("unexpected element <%s> after the end of the document", t.Name.Local)
				}
				root = element
			} else {
				current.children = append(current.children, element)
			}
			stack = append(stack, element)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if current == nil {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errors.New("unexpected text outside of the document element")
				}
				continue
			}
			current.children = append(current.children, &node{kind: textNode, data: string(t)})
		case xml.Comment:
			if current != nil {
				current.children = append(current.children, &node{kind: commentNode, data: string(t)})
			}
		case xml.ProcInst:
			if strings.HasPrefix(strings.ToLower(t.Target), "xml") {
				return nil, errors.New("XML declaration is only allowed at the start of the document")
			}
			if current != nil {
				current.children = append(current.children, &node{kind: instructionNode, name: "<?" + t.Target + "?>"})
			}
		case xml.Directive:
			if current != nil {
				current.children = append(current.children, &node{kind: instructionNode, name: "<!" + string(t) + ">"})
			}
		}
	}

	if root == nil {
		return nil, errors.New("empty document")
	}
	return root, nil
}

// declare returns the namespaces in scope for an element: the parent's plus
// the ones its xmlns attributes bind.
func declare(parent map[string]bool, attrs []xml.Attr) map[string]bool {
	scope := parent
	copied := false
	for _, attr := range attrs {
		if attr.Name.Space != xmlnsPrefix && (attr.Name.Space != "" || attr.Name.Local != xmlnsPrefix) {
			continue
		}
		if !copied {
			scope = make(map[string]bool, len(parent)+1)
			for ns := range parent {
				scope[ns] = true
			}
			copied = true
		}
		scope[attr.Value] = true
	}
	return scope
}

// undeclaredPrefix returns the first prefix on the element or its attributes
// that no namespace declaration binds. The decoder resolves bound prefixes to
// their namespace and leaves unbound ones as written.
func undeclaredPrefix(scope map[string]bool, start xml.StartElement) string {
	if start.Name.Space != "" && !scope[start.Name.Space] {
		return start.Name.Space
	}
	for _, attr := range start.Attr {
		if attr.Name.Space == "" || attr.Name.Space == xmlnsPrefix {
			continue
		}
		if !scope[attr.Name.Space] {
			return attr.Name.Space
		}
	}
	return ""
}

func readDependency(index int, element *node, opts entities.ConversionOptions) (entities.Dependency, error) {
	if element.kind != elementNode || element.name != dependencyTag {
		return entities.Dependency{}, entities.NewStructureError(index, describe(element))
	}

	groupID, ok := element.field(groupIDTag)
	if !ok {
		return entities.Dependency{}, entities.NewMissingFieldError(index, groupIDTag)
	}
	artifactID, ok := element.field(artifactIDTag)
	if !ok {
		return entities.Dependency{}, entities.NewMissingFieldError(index, artifactIDTag)
	}

	version, ok := element.field(versionTag)
	if !ok && opts.StrictVersion && element.child(versionTag) != nil {
		return entities.Dependency{}, entities.NewMissingFieldError(index, versionTag)
	}
	scope, _ := element.field(scopeTag)

	return entities.Dependency{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
		Scope:      scope,
	}, nil
}

func describe(n *node) string {
	switch n.kind {
	case elementNode:
		return "<" + n.name + ">"
	case textNode:
		return fmt.Sprintf("text %q", strings.TrimSpace(n.data))
	case instructionNode:
		return n.name
	case commentNode:
		return "a comment"
	default:
		return "an unknown node"
	}
}

// child returns the first direct child element with the given name.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.kind == elementNode && c.name == name {
			return c
		}
	}
	return nil
}

// field returns the trimmed text of the named child and whether it is non-empty.
func (n *node) field(name string) (string, bool) {
	c := n.child(name)
	if c == nil {
		return "", false
	}
	value := strings.TrimSpace(c.text())
	return value, value != ""
}

func (n *node) text() string {
	var builder strings.Builder
	for _, c := range n.children {
		if c.kind == textNode {
			builder.WriteString(c.data)
		}
	}
	return builder.String()
}
