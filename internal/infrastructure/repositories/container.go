package repositories

import (
	domainRepos "github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
	groovyRepo "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories/groovy"
	kotlinRepo "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories/kotlin"
	mavenRepo "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories/maven"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ParserRepository {
		return mavenRepo.NewParserRepository()
	}); err != nil {
		return err
	}

	// Register renderer registry with all dialect implementations
	if err := container.Provide(func() *RendererRegistry {
		reg := NewRendererRegistry()
		reg.Register(groovyRepo.NewRendererRepository())
		reg.Register(kotlinRepo.NewRendererRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
