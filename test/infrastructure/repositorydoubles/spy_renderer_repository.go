//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
)

// SpyRendererRepository implements repositories.RendererRepository as a configurable spy.
type SpyRendererRepository struct {
	// --- identity ---
	RendererName string

	// --- Render ---
	RenderCalls []RenderCall
}

// RenderCall records a single invocation of Render.
type RenderCall struct {
	Configuration string
	Dep           entities.Dependency
}

var _ repositories.RendererRepository = (*SpyRendererRepository)(nil)

func (r *SpyRendererRepository) Name() string { return r.RendererName }

// Render returns "<configuration> <coordinates>" so tests can see what was passed.
func (r *SpyRendererRepository) Render(configuration string, dep entities.Dependency) string {
	r.RenderCalls = append(r.RenderCalls, RenderCall{Configuration: configuration, Dep: dep})
	return configuration + " " + dep.Coordinates()
}
