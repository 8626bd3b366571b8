package entities

import "strings"

// Dependency is a single Maven dependency declaration read from the input.
type Dependency struct {
	GroupID    string // Maven groupId, required
	ArtifactID string // Maven artifactId, required
	Version    string // Maven version, empty when absent
	Scope      string // Maven scope, empty when absent
}

// HasVersion reports whether the dependency carries a version.
func (it Dependency) HasVersion() bool {
	return it.Version != ""
}

// Coordinates returns "group:artifact" or "group:artifact:version".
// Values are copied verbatim, ${...} placeholders included.
func (it Dependency) Coordinates() string {
	parts := []string{it.GroupID, it.ArtifactID}
	if it.HasVersion() {
		parts = append(parts, it.Version)
	}
	return strings.Join(parts, ":")
}
