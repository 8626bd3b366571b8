//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/internal/domain/repositories"
)

// StubParserRepository is a stub implementation of repositories.ParserRepository.
type StubParserRepository struct {
	Dependencies   []entities.Dependency
	ParseErr       error
	ParseCallCount int
	LastRaw        string
	LastOpts       entities.ConversionOptions
}

var _ repositories.ParserRepository = (*StubParserRepository)(nil)

func (s *StubParserRepository) Parse(
	raw string,
	opts entities.ConversionOptions,
) ([]entities.Dependency, error) {
	s.ParseCallCount++
	s.LastRaw = raw
	s.LastOpts = opts
	if s.ParseErr != nil {
		return nil, s.ParseErr
	}
	return s.Dependencies, nil
}
