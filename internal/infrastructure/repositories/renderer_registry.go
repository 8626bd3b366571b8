package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
)

// RendererRegistry manages all registered build script dialects.
type RendererRegistry struct {
	renderers map[string]domainRepos.RendererRepository
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.RendererRepository),
	}
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.RendererRepository) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given dialect.
func (r *RendererRegistry) Get(name string) (domainRepos.RendererRepository, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect: %q (available: %v)", name, r.Names())
	}
	return renderer, nil
}

// Names returns the registered dialect names, sorted.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
