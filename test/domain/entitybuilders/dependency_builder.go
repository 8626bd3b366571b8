//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultGroupID    = "com.squareup.retrofit2"
	defaultArtifactID = "retrofit"
	defaultVersion    = "34"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	groupID    string
	artifactID string
	version    string
	scope      string
}

// NewDependencyBuilder creates a new dependency builder defaulting to
// com.squareup.retrofit2:retrofit:34.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     defaultGroupID,
		artifactID:  defaultArtifactID,
		version:     defaultVersion,
	}
}

// WithGroupID sets the groupId.
func (b *DependencyBuilder) WithGroupID(groupID string) *DependencyBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifactId.
func (b *DependencyBuilder) WithArtifactID(artifactID string) *DependencyBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version; an empty string means no version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithScope sets the Maven scope.
func (b *DependencyBuilder) WithScope(scope string) *DependencyBuilder {
	b.scope = scope
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		GroupID:    b.groupID,
		ArtifactID: b.artifactID,
		Version:    b.version,
		Scope:      b.scope,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = defaultGroupID
	b.artifactID = defaultArtifactID
	b.version = defaultVersion
	b.scope = ""
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		version:     b.version,
		scope:       b.scope,
	}
}
