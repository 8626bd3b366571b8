package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for mvn2gradle.
// Zero values mean "not set" and leave the built-in defaults in place.
type Config struct {
	Dialect       string `yaml:"dialect"`        // "groovy" or "kotlin"
	Configuration string `yaml:"configuration"`  // e.g. "implementation", "api"
	MapScopes     bool   `yaml:"map_scopes"`     // derive configuration from <scope>
	StrictVersion bool   `yaml:"strict_version"` // reject empty <version/>
}

// ErrConfigNotFound is returned by FindConfigFile when no file exists.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// ErrInvalidConfig is returned when a settings value fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Dialect = strings.ToLower(expandEnv(cfg.Dialect))
	cfg.Configuration = expandEnv(cfg.Configuration)

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("config file %q: %w", path, validateErr)
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or ErrConfigNotFound.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	return findIn(locations)
}

func findIn(locations []string) (string, error) {
	patterns := []string{
		".mvn2gradle.yaml",
		".mvn2gradle.yml",
		"mvn2gradle.yaml",
		"mvn2gradle.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// Validate checks the configuration keyword is a usable Gradle identifier.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Configuration, " \t\r\n\"'") {
		return fmt.Errorf(
			"%w: configuration %q must not contain whitespace or quotes",
			ErrInvalidConfig,
			c.Configuration,
		)
	}

	return nil
}
