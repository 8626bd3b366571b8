//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/test/domain/entitybuilders"
)

func TestDependencyCoordinates(t *testing.T) {
	t.Parallel()

	t.Run("should join group, artifact and version", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().BuildDependency()

		// when
		result := dep.Coordinates()

		// then
		assert.Equal(t, "com.squareup.retrofit2:retrofit:34", result)
	})

	t.Run("should omit the version segment when absent", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().WithVersion("").BuildDependency()

		// when
		result := dep.Coordinates()

		// then
		assert.Equal(t, "com.squareup.retrofit2:retrofit", result)
		assert.False(t, dep.HasVersion())
	})

	t.Run("should keep placeholders verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().WithVersion("${version}").BuildDependency()

		// when
		result := dep.Coordinates()

		// then
		assert.Equal(t, "com.squareup.retrofit2:retrofit:${version}", result)
	})
}

func TestNewConversionOptions(t *testing.T) {
	t.Parallel()

	t.Run("should default to groovy implementation", func(t *testing.T) {
		t.Parallel()

		// given / when
		opts := entities.NewConversionOptions()

		// then
		assert.Equal(t, "groovy", opts.Dialect)
		assert.Equal(t, "implementation", opts.Configuration)
		assert.False(t, opts.MapScopes)
		assert.False(t, opts.StrictVersion)
	})
}

func TestConversionError(t *testing.T) {
	t.Parallel()

	t.Run("should match its own sentinel only", func(t *testing.T) {
		t.Parallel()

		// given
		err := entities.NewStructureError(2, "<plugin>")

		// when / then
		require.ErrorIs(t, err, entities.ErrStructure)
		assert.NotErrorIs(t, err, entities.ErrParse)
		assert.NotErrorIs(t, err, entities.ErrMissingField)
		assert.NotErrorIs(t, err, entities.ErrUsage)
	})

	t.Run("should stay matchable when wrapped", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("converting: %w", entities.NewMissingFieldError(1, "groupId"))

		// when
		var convErr *entities.ConversionError
		ok := errors.As(err, &convErr)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.MissingFieldError, convErr.Kind)
		assert.Equal(t, "groupId", convErr.Field)
		require.ErrorIs(t, err, entities.ErrMissingField)
	})

	t.Run("should unwrap the parser cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("unexpected EOF")

		// when
		err := entities.NewParseError(cause)

		// then
		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, entities.ErrParse)
		assert.Equal(t, "parse error: unexpected EOF", err.Error())
	})

	t.Run("should render each kind with its context", func(t *testing.T) {
		t.Parallel()

		// given
		usageErr := entities.NewUsageError("expected exactly 1 argument, received 0")
		structureErr := entities.NewStructureError(3, "<plugin>")
		missingErr := entities.NewMissingFieldError(1, "artifactId")

		// when / then
		assert.Equal(t, "usage error: expected exactly 1 argument, received 0", usageErr.Error())
		assert.Equal(t, "not a dependency: dependency #3 is <plugin>", structureErr.Error())
		assert.Equal(t, `missing field "artifactId" in dependency #1`, missingErr.Error())
	})

	t.Run("should name the kind", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, "ParseError", entities.ParseError.String())
		assert.Equal(t, "ErrorKind(42)", entities.ErrorKind(42).String())
	})
}
