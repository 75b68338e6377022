package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/manifest"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the assembled manifest",
		Long: `Assemble the manifest and check its structure: no duplicate
permissions or plugins, a scheme on every deep-link entry, and a semantic
version. Exits non-zero when a check fails.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := assemble()
	if err != nil {
		return err
	}

	if err := manifest.Validate(m); err != nil {
		return fmt.Errorf("manifest is invalid:\n%w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Manifest OK: %s %s (%d plugins)\n", m.Name, m.Version, len(m.Plugins))
	return nil
}
