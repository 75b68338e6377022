package manifest

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Validate checks the structural invariants of m: unique permissions and
// plugins, a scheme on every intent data entry, and a semver version.
func Validate(m *Manifest) error {
	var errs []error

	if !isFullSemver(m.Version) {
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", m.Version))
	}

	if dup, ok := firstDuplicate(m.IOS.InfoPlist.UIBackgroundModes); ok {
		errs = append(errs, fmt.Errorf("ios.infoPlist.UIBackgroundModes lists %q twice", dup))
	}
	if dup, ok := firstDuplicate(m.IOS.AssociatedDomains); ok {
		errs = append(errs, fmt.Errorf("ios.associatedDomains lists %q twice", dup))
	}
	if dup, ok := firstDuplicate(m.Android.Permissions); ok {
		errs = append(errs, fmt.Errorf("android.permissions lists %q twice", dup))
	}

	for i, f := range m.Android.IntentFilters {
		if len(f.Data) == 0 {
			errs = append(errs, fmt.Errorf("android.intentFilters[%d] has no data", i))
		}
		for j, d := range f.Data {
			if d.Scheme == "" {
				errs = append(errs, fmt.Errorf("android.intentFilters[%d].data[%d] has no scheme", i, j))
			}
		}
		if dup, ok := firstDuplicate(f.Category); ok {
			errs = append(errs, fmt.Errorf("android.intentFilters[%d].category lists %q twice", i, dup))
		}
	}

	names := make([]string, 0, len(m.Plugins))
	for i, p := range m.Plugins {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("plugins[%d] has no name", i))
			continue
		}
		names = append(names, p.Name)
	}
	if dup, ok := firstDuplicate(names); ok {
		errs = append(errs, fmt.Errorf("plugins lists %q twice", dup))
	}

	return errors.Join(errs...)
}

// isFullSemver reports whether version is MAJOR.MINOR.PATCH with optional
// prerelease and build suffixes. semver.IsValid alone also accepts the
// vMAJOR and vMAJOR.MINOR shorthands.
func isFullSemver(version string) bool {
	v := "v" + version
	if !semver.IsValid(v) {
		return false
	}
	core, _, _ := strings.Cut(v, "+")
	return semver.Canonical(v) == core
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
