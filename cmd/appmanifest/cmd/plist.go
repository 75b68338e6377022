package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/infoplist"
)

var (
	plistOut          string
	plistEntitlements bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "plist",
		Short: "Render the iOS Info.plist",
		Long: `Assemble the manifest and render its iOS block as an XML property list.

Usage:
  appmanifest plist                         # Info.plist to stdout
  appmanifest plist --entitlements          # entitlements to stdout
  appmanifest plist --out Info.plist        # Info.plist to a file`,
		Args: cobra.NoArgs,
		RunE: runPlist,
	}
	cmd.Flags().StringVarP(&plistOut, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&plistEntitlements, "entitlements", false, "render the entitlements instead of Info.plist")
	RegisterCommand(cmd)
}

func runPlist(cmd *cobra.Command, args []string) error {
	m, err := assemble()
	if err != nil {
		return err
	}

	render := infoplist.Render
	if plistEntitlements {
		render = infoplist.RenderEntitlements
	}

	return writeOutput(cmd, plistOut, func(w io.Writer) error {
		return render(w, m)
	})
}
