//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvn2gradle/config"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestExpandEnv(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return plain value unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "api"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "api", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_MVN2GRADLE_DIALECT", "kotlin")
		raw := "${TEST_MVN2GRADLE_DIALECT}"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "kotlin", result)
	})

	t.Run("should expand env var embedded in string", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_MVN2GRADLE_KIND", "Implementation")
		raw := "test${TEST_MVN2GRADLE_KIND}"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "testImplementation", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Empty(t, result)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should pass with an empty configuration", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{}

		// when
		err := cfg.Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should pass with a plain configuration keyword", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Configuration: "testImplementation"}

		// when
		err := cfg.Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when the configuration contains whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Configuration: "test Implementation"}

		// when
		err := cfg.Validate()

		// then
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "must not contain whitespace or quotes")
	})

	t.Run("should fail when the configuration contains quotes", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{Configuration: `api"`}

		// when
		err := cfg.Validate()

		// then
		require.Error(t, err)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should load valid config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "mvn2gradle.yaml")
		content := `
dialect: Kotlin
configuration: api
map_scopes: true
strict_version: true
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "kotlin", cfg.Dialect)
		assert.Equal(t, "api", cfg.Configuration)
		assert.True(t, cfg.MapScopes)
		assert.True(t, cfg.StrictVersion)
	})

	t.Run("should expand environment variables in values", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_MVN2GRADLE_CONFIGURATION", "compileOnly")
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "mvn2gradle.yaml")
		content := "configuration: ${TEST_MVN2GRADLE_CONFIGURATION}\n"
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "compileOnly", cfg.Configuration)
	})

	t.Run("should leave unset keys empty", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "mvn2gradle.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("map_scopes: true\n"), 0o600))

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Empty(t, cfg.Dialect)
		assert.Empty(t, cfg.Configuration)
		assert.False(t, cfg.StrictVersion)
	})

	t.Run("should fail when file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "mvn2gradle.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("dialect: [unclosed\n"), 0o600))

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail validation on a bad configuration keyword", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "mvn2gradle.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("configuration: \"my config\"\n"), 0o600))

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), cfgFile)
	})
}

func TestFindIn(t *testing.T) {
	t.Parallel()

	t.Run("should find the dotted file first", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "mvn2gradle.yaml"), []byte(""), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".mvn2gradle.yaml"), []byte(""), 0o600))

		// when
		path, err := config.FindIn([]string{tmpDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, ".mvn2gradle.yaml"), path)
	})

	t.Run("should search locations in order", func(t *testing.T) {
		t.Parallel()

		// given
		first := t.TempDir()
		second := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(second, "mvn2gradle.yml"), []byte(""), 0o600))

		// when
		path, err := config.FindIn([]string{first, second})

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(second, "mvn2gradle.yml"), path)
	})

	t.Run("should return ErrConfigNotFound when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()

		// when
		path, err := config.FindIn([]string{tmpDir})

		// then
		require.ErrorIs(t, err, config.ErrConfigNotFound)
		assert.Empty(t, path)
	})
}
