//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/mvn2gradle/internal"
	"github.com/rios0rios0/mvn2gradle/internal/domain/commands"
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the app with every controller", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))

		// when
		var uses []string
		err := container.Invoke(func(app *internal.AppInternal) {
			for _, controller := range app.GetControllers() {
				uses = append(uses, controller.GetBind().Use)
			}
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"convert <dependency-xml>", "dialects"}, uses)
	})

	t.Run("should resolve a working convert command", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, internal.RegisterProviders(container))
		input := `<dependency><groupId>com.squareup.retrofit2</groupId><artifactId>retrofit</artifactId><version>34</version></dependency>`

		// when
		var out string
		var convErr error
		err := container.Invoke(func(command commands.Convert, opts entities.ConversionOptions) {
			out, convErr = command.Execute(input, opts)
		})

		// then
		require.NoError(t, err)
		require.NoError(t, convErr)
		assert.Equal(t, `implementation "com.squareup.retrofit2:retrofit:34"`, out)
	})
}
