package commands

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories"
)

// Convert is the interface for the convert command.
type Convert interface {
	Execute(input string, opts entities.ConversionOptions) (string, error)
}

// scopeConfigurations maps Maven scopes to Gradle configurations.
// Scopes missing from the map keep the configured default.
var scopeConfigurations = map[string]string{ //nolint:gochecknoglobals // read-only lookup table
	"test":     "testImplementation",
	"provided": "compileOnly",
	"runtime":  "runtimeOnly",
	"system":   "compileOnly",
}

// ConvertCommand turns Maven <dependency> markup into Gradle declarations.
// It is a pure transformation: no I/O, no process exit.
type ConvertCommand struct {
	parser           domainRepos.ParserRepository
	rendererRegistry *infraRepos.RendererRegistry
}

// NewConvertCommand creates a new ConvertCommand.
func NewConvertCommand(
	parser domainRepos.ParserRepository,
	rendererRegistry *infraRepos.RendererRegistry,
) *ConvertCommand {
	return &ConvertCommand{
		parser:           parser,
		rendererRegistry: rendererRegistry,
	}
}

// Execute converts input and returns one Gradle line per dependency joined
// with "\n". On error nothing is returned but the error.
func (it *ConvertCommand) Execute(input string, opts entities.ConversionOptions) (string, error) {
	dialect := opts.Dialect
	if dialect == "" {
		dialect = entities.DefaultDialect
	}
	renderer, err := it.rendererRegistry.Get(dialect)
	if err != nil {
		return "", entities.NewUsageError(err.Error())
	}

	dependencies, err := it.parser.Parse(input, opts)
	if err != nil {
		return "", fmt.Errorf("failed to convert dependencies: %w", err)
	}
	logger.Debugf("Rendering %d dependencies with the %s dialect", len(dependencies), renderer.Name())

	lines := make([]string, 0, len(dependencies))
	for _, dep := range dependencies {
		lines = append(lines, renderer.Render(configurationFor(dep, opts), dep))
	}
	return strings.Join(lines, "\n"), nil
}

// configurationFor picks the Gradle configuration for dep.
func configurationFor(dep entities.Dependency, opts entities.ConversionOptions) string {
	configuration := opts.Configuration
	if configuration == "" {
		configuration = entities.DefaultConfiguration
	}
	if !opts.MapScopes {
		return configuration
	}
	if mapped, ok := scopeConfigurations[dep.Scope]; ok {
		return mapped
	}
	return configuration
}
