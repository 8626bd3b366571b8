package repositories

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
)

// RendererRepository abstracts a Gradle build script dialect (Groovy DSL, Kotlin DSL).
type RendererRepository interface {
	// Name returns the dialect identifier (e.g. "groovy", "kotlin").
	Name() string

	// Render returns the declaration of dep under the given configuration,
	// e.g. `implementation "group:artifact:version"`.
	Render(configuration string, dep entities.Dependency) string
}
