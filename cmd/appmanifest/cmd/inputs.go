package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "inputs",
		Short: "Show recognized inputs and their effective values",
		Long: `Show every recognized input, the environment variable it is read from,
whether it is set, and the value the manifest will use.

Inputs that are not set fall back to their defaults or leave their section out.`,
		Args: cobra.NoArgs,
		RunE: runInputs,
	})
}

func runInputs(cmd *cobra.Command, args []string) error {
	inputs, err := loadInputs()
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Inputs:")
	for _, in := range config.Inputs {
		status := "unset"
		if _, ok := inputs.Lookup(in.Name); ok {
			status = "set"
		}
		fmt.Fprintf(out, "  %-26s %-42s %-6s %s\n", in.Name, in.EnvVar, status, effectiveValue(resolved, in.Name))
	}

	return nil
}

func effectiveValue(r *config.Resolved, name string) string {
	switch name {
	case config.InputAppSlug:
		return r.Slug
	case config.InputProjectID:
		return r.ProjectID
	case config.InputIOSCredentialsPath:
		return orOmitted(r.IOSCredentialsPath)
	case config.InputAndroidCredentialsPath:
		return orOmitted(r.AndroidCredentialsPath)
	case config.InputCrashReportingProject:
		if r.CrashReporting == nil {
			return "(omitted)"
		}
		return r.CrashReporting.Project
	case config.InputCrashReportingOrg:
		if r.CrashReporting == nil {
			return "(omitted)"
		}
		return r.CrashReporting.Organization
	case config.InputStorybookEnabled:
		if r.StorybookEnabled == nil {
			return "(omitted)"
		}
		return fmt.Sprintf("%q", *r.StorybookEnabled)
	default:
		return ""
	}
}

func orOmitted(v *string) string {
	if v == nil {
		return "(omitted)"
	}
	return *v
}
