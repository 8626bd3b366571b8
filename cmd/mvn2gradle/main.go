package main

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvn2gradle/internal"
	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	"github.com/rios0rios0/mvn2gradle/internal/infrastructure/controllers"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	errorHeader = "error:"
)

func buildRootCommand(convertController *controllers.ConvertController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "mvn2gradle <dependency-xml>",
		Short: "Convert Maven dependency XML into Gradle declarations",
		Long: `Convert Maven <dependency> elements into Gradle dependency declarations.

Pass the XML as a single (quoted) argument. Each <dependency> becomes one
line such as:

  implementation "com.squareup.retrofit2:retrofit:2.9.0"

Settings are read from .mvn2gradle.yaml (or --config) when present;
explicit flags take precedence.`,
		Args:          convertController.Args,
		RunE:          convertController.Execute,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}
	cmd.Example = `  mvn2gradle '<dependency><groupId>junit</groupId><artifactId>junit</artifactId></dependency>'
  mvn2gradle --dialect kotlin --map-scopes "$(cat snippet.xml)"`

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	convertController.AddFlags(cmd)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return entities.NewUsageError(err.Error())
	})
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:           bind.Use,
			Short:         bind.Short,
			Long:          bind.Long,
			RunE:          controller.Execute,
			SilenceErrors: true,
			SilenceUsage:  true,
		}

		// Add controller-specific flags
		if cc, ok := controller.(*controllers.ConvertController); ok {
			subCmd.Args = cc.Args
			cc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

// execute runs the command tree and maps the outcome to a process exit code.
func execute(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	command, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	errOut := rootCmd.ErrOrStderr()
	_, _ = fmt.Fprintf(errOut, "%s\n\t%v\n", errorHeader, err)

	if errors.Is(err, entities.ErrUsage) {
		_, _ = fmt.Fprintf(errOut, "\n%s", command.UsageString())
		return exitUsage
	}

	var convErr *entities.ConversionError
	if errors.As(err, &convErr) {
		logger.Debugf("Conversion failed with %s", convErr.Kind)
	}
	return exitFailure
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectConvertController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	os.Exit(execute(cobraRoot, os.Args[1:]))
}
