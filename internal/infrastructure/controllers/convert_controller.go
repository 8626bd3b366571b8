package controllers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvn2gradle/config"
	"github.com/rios0rios0/mvn2gradle/internal/domain/commands"
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories"
)

const outputHeader = "for gradle:"

// ConvertController handles the conversion of a dependency XML argument.
type ConvertController struct {
	command          commands.Convert
	rendererRegistry *infraRepos.RendererRegistry
	defaults         entities.ConversionOptions
}

// NewConvertController creates a new ConvertController.
func NewConvertController(
	command commands.Convert,
	rendererRegistry *infraRepos.RendererRegistry,
	defaults entities.ConversionOptions,
) *ConvertController {
	return &ConvertController{
		command:          command,
		rendererRegistry: rendererRegistry,
		defaults:         defaults,
	}
}

// GetBind returns the Cobra command metadata for the convert controller.
func (it *ConvertController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "convert <dependency-xml>",
		Short: "Convert Maven <dependency> elements into Gradle declarations",
		Long: `Convert one or more Maven <dependency> elements into Gradle dependency
declarations, one line per dependency, in input order.

Comments between elements are ignored. Newlines and spaces are stripped
before parsing, including spaces inside values.

Example:
  mvn2gradle convert '<dependency>
    <groupId>com.squareup.retrofit2</groupId>
    <artifactId>retrofit</artifactId>
    <version>2.9.0</version>
  </dependency>'`,
	}
}

// Args accepts exactly one positional argument and reports anything else as a usage error.
func (it *ConvertController) Args(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return entities.NewUsageError(
			fmt.Sprintf("expected exactly 1 argument, received %d", len(args)),
		)
	}
	return nil
}

// AddFlags adds the convert-specific flags to the given Cobra command.
func (it *ConvertController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dialect", "",
		fmt.Sprintf("Build script dialect (%s) (default %q)",
			strings.Join(it.rendererRegistry.Names(), ", "), it.defaults.Dialect),
	)
	cmd.Flags().String("configuration", "",
		fmt.Sprintf("Gradle configuration keyword (default %q)", it.defaults.Configuration),
	)
	cmd.Flags().Bool("map-scopes", false,
		"Derive the configuration from <scope> (test -> testImplementation, ...)")
	cmd.Flags().Bool("strict-version", false,
		"Fail on an empty <version/> instead of omitting it")
}

// Execute converts the single argument and prints the Gradle lines.
func (it *ConvertController) Execute(cmd *cobra.Command, args []string) error {
	if err := it.Args(cmd, args); err != nil {
		return err
	}

	opts, err := it.resolveOptions(cmd)
	if err != nil {
		return err
	}
	logger.Debugf("Converting with options: %+v", opts)

	output, err := it.command.Execute(args[0], opts)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), output)
}

// resolveOptions layers the settings file and then explicitly set flags over the defaults.
func (it *ConvertController) resolveOptions(cmd *cobra.Command) (entities.ConversionOptions, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return entities.ConversionOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("dialect") {
		cfg.Dialect, _ = flags.GetString("dialect")
		cfg.Dialect = strings.ToLower(cfg.Dialect)
	}
	if flags.Changed("configuration") {
		cfg.Configuration, _ = flags.GetString("configuration")
	}
	if flags.Changed("map-scopes") {
		cfg.MapScopes, _ = flags.GetBool("map-scopes")
	}
	if flags.Changed("strict-version") {
		cfg.StrictVersion, _ = flags.GetBool("strict-version")
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return entities.ConversionOptions{}, entities.NewUsageError(validateErr.Error())
	}

	opts := it.defaults
	if cfg.Dialect != "" {
		opts.Dialect = cfg.Dialect
	}
	if cfg.Configuration != "" {
		opts.Configuration = cfg.Configuration
	}
	if cfg.MapScopes || flags.Changed("map-scopes") {
		opts.MapScopes = cfg.MapScopes
	}
	if cfg.StrictVersion || flags.Changed("strict-version") {
		opts.StrictVersion = cfg.StrictVersion
	}

	if _, dialectErr := it.rendererRegistry.Get(opts.Dialect); dialectErr != nil {
		return entities.ConversionOptions{}, entities.NewUsageError(dialectErr.Error())
	}
	return opts, nil
}

// loadSettings reads the --config file, or the auto-detected one. No file at all is fine.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := config.FindConfigFile()
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Debug("No config file found, using defaults")
			return &config.Config{}, nil
		}
		if err != nil {
			return nil, err
		}
		cfgPath = found
	}

	logger.Debugf("Using config file: %s", cfgPath)
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, config.ErrInvalidConfig) {
		return nil, entities.NewUsageError(err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// writeOutput prints the header followed by every line indented with a tab.
func writeOutput(w io.Writer, output string) error {
	var builder strings.Builder
	builder.WriteString(outputHeader + "\n")
	if output != "" {
		for _, line := range strings.Split(output, "\n") {
			builder.WriteString("\t" + line + "\n")
		}
	}
	_, err := io.WriteString(w, builder.String())
	return err
}
