//go:build unit

package kotlin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories/kotlin"
	"github.com/rios0rios0/mvn2gradle/test/domain/entitybuilders"
)

func TestRendererRepository(t *testing.T) {
	t.Parallel()

	t.Run("should be named kotlin", func(t *testing.T) {
		t.Parallel()

		// given / when
		name := kotlin.NewRendererRepository().Name()

		// then
		assert.Equal(t, "kotlin", name)
	})

	t.Run("should render a function call", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().WithVersion("${version}").BuildDependency()

		// when
		line := kotlin.NewRendererRepository().Render("implementation", dep)

		// then
		assert.Equal(t, `implementation("com.squareup.retrofit2:retrofit:${version}")`, line)
	})
}
