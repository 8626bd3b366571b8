package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvn2gradle/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvn2gradle/internal/infrastructure/repositories"
)

// DialectsController handles the "dialects" subcommand.
type DialectsController struct {
	rendererRegistry *infraRepos.RendererRegistry
}

// NewDialectsController creates a new DialectsController.
func NewDialectsController(rendererRegistry *infraRepos.RendererRegistry) *DialectsController {
	return &DialectsController{rendererRegistry: rendererRegistry}
}

// GetBind returns the Cobra command metadata for the dialects controller.
func (it *DialectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dialects",
		Short: "List the supported build script dialects",
		Long:  `List the build script dialects accepted by --dialect, one per line.`,
	}
}

// Execute prints the registered dialect names.
func (it *DialectsController) Execute(cmd *cobra.Command, _ []string) error {
	for _, name := range it.rendererRegistry.Names() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}
