package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/manifest"
)

var (
	generateFormat string
	generateOut    string
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assemble and write the manifest",
		Long: `Assemble the app manifest from the current inputs and write it.

Optional sections are included only when their inputs are set:
  ios.googleServicesFile       EXPO_PUBLIC_IOS_GOOGLE_SERVICES_FILE
  android.googleServicesFile   EXPO_PUBLIC_ANDROID_GOOGLE_SERVICES_FILE
  Sentry plugin                EXPO_PUBLIC_SENTRY_PROJECT_NAME and EXPO_PUBLIC_SENTRY_ORG_NAME

An input that is set to an empty value is not treated as unset: an empty
app slug, project id, credentials path, or Sentry coordinate is rejected
and nothing is written. Unset the variable to fall back to the default.

Usage:
  appmanifest generate                     # JSON to stdout
  appmanifest generate --format yaml       # YAML to stdout
  appmanifest generate --out app.json      # JSON to a file`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	cmd.Flags().StringVarP(&generateFormat, "format", "f", "json", "output format (json or yaml)")
	cmd.Flags().StringVarP(&generateOut, "out", "o", "", "output file (default: stdout)")
	RegisterCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := manifest.ParseFormat(generateFormat)
	if err != nil {
		return err
	}

	m, err := assemble()
	if err != nil {
		return err
	}

	return writeOutput(cmd, generateOut, func(w io.Writer) error {
		return manifest.Encode(w, m, format)
	})
}
