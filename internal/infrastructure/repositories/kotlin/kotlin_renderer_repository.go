package kotlin

import (
	"fmt"

	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
)

// RendererRepository renders declarations for build.gradle.kts files.
type RendererRepository struct{}

var _ repositories.RendererRepository = (*RendererRepository)(nil)

// NewRendererRepository creates a new Kotlin DSL renderer.
func NewRendererRepository() *RendererRepository {
	return &RendererRepository{}
}

func (it *RendererRepository) Name() string { return "kotlin" }

// Render returns e.g. `implementation("com.squareup.retrofit2:retrofit:34")`.
func (it *RendererRepository) Render(configuration string, dep entities.Dependency) string {
	return fmt.Sprintf("%s(\"%s\")", configuration, dep.Coordinates())
}
