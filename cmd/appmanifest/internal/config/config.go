// Package config resolves the assembler's inputs into effective values.
package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// Fallback values used when the corresponding input is absent.
const (
	DefaultSlug      = "echat-mobile"
	DefaultProjectID = "0b1cd169-953e-4396-8eb2-5e46f61c56e1"
)

// MisconfiguredInputError reports an input that is present but structurally
// invalid.
type MisconfiguredInputError struct {
	// Input is the input name (e.g., "ios-credentials-path").
	Input string
	// Value is the rejected value.
	Value string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *MisconfiguredInputError) Error() string {
	return fmt.Sprintf("misconfigured input %s=%q: %s", e.Input, e.Value, e.Reason)
}

// CrashReporting holds the crash-reporting coordinates. It is only set when
// both the project and the organization were provided.
type CrashReporting struct {
	Project      string
	Organization string
}

// Resolved contains the effective value of every recognized input.
type Resolved struct {
	Slug      string
	ProjectID string

	// Credentials paths, nil when unset.
	IOSCredentialsPath     *string
	AndroidCredentialsPath *string

	CrashReporting *CrashReporting

	// StorybookEnabled is the raw flag value, nil when unset.
	StorybookEnabled *string
}

// Resolve validates the input set and applies defaults.
func Resolve(in InputSet) (*Resolved, error) {
	r := &Resolved{
		Slug:      DefaultSlug,
		ProjectID: DefaultProjectID,
	}

	if v, ok := in.Lookup(InputAppSlug); ok {
		if err := requireValue(InputAppSlug, v); err != nil {
			return nil, err
		}
		r.Slug = v
	}

	if v, ok := in.Lookup(InputProjectID); ok {
		if err := requireValue(InputProjectID, v); err != nil {
			return nil, err
		}
		r.ProjectID = v
	}

	if v, ok := in.Lookup(InputIOSCredentialsPath); ok {
		if err := validateCredentialsPath(InputIOSCredentialsPath, v); err != nil {
			return nil, err
		}
		r.IOSCredentialsPath = &v
	}

	if v, ok := in.Lookup(InputAndroidCredentialsPath); ok {
		if err := validateCredentialsPath(InputAndroidCredentialsPath, v); err != nil {
			return nil, err
		}
		r.AndroidCredentialsPath = &v
	}

	project, hasProject := in.Lookup(InputCrashReportingProject)
	if hasProject {
		if err := requireValue(InputCrashReportingProject, project); err != nil {
			return nil, err
		}
	}
	org, hasOrg := in.Lookup(InputCrashReportingOrg)
	if hasOrg {
		if err := requireValue(InputCrashReportingOrg, org); err != nil {
			return nil, err
		}
	}
	// Only one of the pair means crash reporting is not configured.
	if hasProject && hasOrg {
		r.CrashReporting = &CrashReporting{Project: project, Organization: org}
	}

	if v, ok := in.Lookup(InputStorybookEnabled); ok {
		r.StorybookEnabled = &v
	}

	return r, nil
}

func requireValue(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &MisconfiguredInputError{Input: name, Value: value, Reason: "value is empty"}
	}
	return nil
}

func validateCredentialsPath(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &MisconfiguredInputError{Input: name, Value: value, Reason: "path is empty"}
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return &MisconfiguredInputError{Input: name, Value: value, Reason: "path contains control characters"}
		}
	}
	if path.IsAbs(value) || filepath.IsAbs(value) || filepath.VolumeName(value) != "" || isWindowsAbs(value) {
		return &MisconfiguredInputError{Input: name, Value: value, Reason: "path must be relative to the project root"}
	}
	return nil
}

// isWindowsAbs catches drive and UNC paths regardless of the host OS.
func isWindowsAbs(p string) bool {
	if strings.HasPrefix(p, `\`) {
		return true
	}
	if len(p) >= 2 && p[1] == ':' {
		c := p[0]
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
	}
	return false
}
