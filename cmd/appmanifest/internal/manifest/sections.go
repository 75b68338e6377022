package manifest

import "github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"

// sections holds the optional fragments produced for one assembly. Each
// has* flag records whether its fragment is included.
type sections struct {
	iosCredentials        string
	hasIOSCredentials     bool
	androidCredentials    string
	hasAndroidCredentials bool
	crashReporting        Plugin
	hasCrashReporting     bool
}

func buildSections(r *config.Resolved) sections {
	var s sections
	s.iosCredentials, s.hasIOSCredentials = iosCredentials(r)
	s.androidCredentials, s.hasAndroidCredentials = androidCredentials(r)
	s.crashReporting, s.hasCrashReporting = crashReporting(r)
	return s
}

func iosCredentials(r *config.Resolved) (string, bool) {
	if r.IOSCredentialsPath == nil {
		return "", false
	}
	return *r.IOSCredentialsPath, true
}

func androidCredentials(r *config.Resolved) (string, bool) {
	if r.AndroidCredentialsPath == nil {
		return "", false
	}
	return *r.AndroidCredentialsPath, true
}

// crashReporting builds the Sentry plugin entry. Both coordinates are
// checked before anything is constructed.
func crashReporting(r *config.Resolved) (Plugin, bool) {
	cr := r.CrashReporting
	if cr == nil || cr.Project == "" || cr.Organization == "" {
		return Plugin{}, false
	}
	return Plugin{
		Name: PluginCrashReporting,
		Options: &CrashReportingOptions{
			URL:          crashReportingURL,
			Project:      cr.Project,
			Organization: cr.Organization,
		},
	}, true
}

// Names of the optional sections.
const (
	SectionIOSCredentials     = "ios.googleServicesFile"
	SectionAndroidCredentials = "android.googleServicesFile"
	SectionCrashReporting     = "plugins.crashReporting"
)

// Included reports which optional sections an assembly from r would emit.
func Included(r *config.Resolved) map[string]bool {
	s := buildSections(r)
	return map[string]bool{
		SectionIOSCredentials:     s.hasIOSCredentials,
		SectionAndroidCredentials: s.hasAndroidCredentials,
		SectionCrashReporting:     s.hasCrashReporting,
	}
}
