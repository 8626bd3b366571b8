package repositories

import (
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
)

// ParserRepository turns raw Maven dependency markup into dependencies.
// Implementations return a *entities.ConversionError on failure and never
// return a partial result alongside an error.
type ParserRepository interface {
	// Parse reads every top-level <dependency> of raw, in document order.
	Parse(raw string, opts entities.ConversionOptions) ([]entities.Dependency, error)
}
