// Package manifest assembles the app manifest consumed by the build toolchain.
//
// Assembly is a pure function of a config.InputSet: inputs are resolved,
// optional sections are built from the resolved values, and the sections are
// merged into a fresh copy of the static skeleton. The same inputs always
// produce an equal tree.
package manifest

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of the assembled tree. Its key set is fixed.
type Manifest struct {
	Name                 string        `json:"name" yaml:"name"`
	Slug                 string        `json:"slug" yaml:"slug"`
	Version              string        `json:"version" yaml:"version"`
	Orientation          string        `json:"orientation" yaml:"orientation"`
	Icon                 string        `json:"icon" yaml:"icon"`
	UserInterfaceStyle   string        `json:"userInterfaceStyle" yaml:"userInterfaceStyle"`
	NewArchEnabled       bool          `json:"newArchEnabled" yaml:"newArchEnabled"`
	Scheme               string        `json:"scheme" yaml:"scheme"`
	Splash               Splash        `json:"splash" yaml:"splash"`
	IOS                  IOS           `json:"ios" yaml:"ios"`
	Android              Android       `json:"android" yaml:"android"`
	Extra                Extra         `json:"extra" yaml:"extra"`
	Owner                string        `json:"owner" yaml:"owner"`
	Plugins              []Plugin      `json:"plugins" yaml:"plugins"`
	AndroidNavigationBar NavigationBar `json:"androidNavigationBar" yaml:"androidNavigationBar"`
}

// Splash describes the launch screen.
type Splash struct {
	Image                       string `json:"image" yaml:"image"`
	ResizeMode                  string `json:"resizeMode" yaml:"resizeMode"`
	BackgroundColor             string `json:"backgroundColor" yaml:"backgroundColor"`
	EnableFullScreenImageLegacy bool   `json:"enableFullScreenImage_legacy" yaml:"enableFullScreenImage_legacy"`
}

// IOS is the iOS platform block.
type IOS struct {
	SupportsTablet     bool              `json:"supportsTablet" yaml:"supportsTablet"`
	BundleIdentifier   string            `json:"bundleIdentifier" yaml:"bundleIdentifier"`
	InfoPlist          InfoPlist         `json:"infoPlist" yaml:"infoPlist"`
	GoogleServicesFile string            `json:"googleServicesFile,omitempty" yaml:"googleServicesFile,omitempty"`
	Entitlements       map[string]string `json:"entitlements" yaml:"entitlements"`
	AssociatedDomains  []string          `json:"associatedDomains" yaml:"associatedDomains"`
}

// InfoPlist holds the Info.plist keys. UIBackgroundModes is the iOS
// permission set.
type InfoPlist struct {
	NSCameraUsageDescription       string   `json:"NSCameraUsageDescription" yaml:"NSCameraUsageDescription"`
	NSPhotoLibraryUsageDescription string   `json:"NSPhotoLibraryUsageDescription" yaml:"NSPhotoLibraryUsageDescription"`
	NSMicrophoneUsageDescription   string   `json:"NSMicrophoneUsageDescription" yaml:"NSMicrophoneUsageDescription"`
	NSAppleMusicUsageDescription   string   `json:"NSAppleMusicUsageDescription" yaml:"NSAppleMusicUsageDescription"`
	UIBackgroundModes              []string `json:"UIBackgroundModes" yaml:"UIBackgroundModes"`
	ITSAppUsesNonExemptEncryption  bool     `json:"ITSAppUsesNonExemptEncryption" yaml:"ITSAppUsesNonExemptEncryption"`
}

// Android is the Android platform block.
type Android struct {
	AdaptiveIcon       AdaptiveIcon   `json:"adaptiveIcon" yaml:"adaptiveIcon"`
	Package            string         `json:"package" yaml:"package"`
	Permissions        []string       `json:"permissions" yaml:"permissions"`
	GoogleServicesFile string         `json:"googleServicesFile,omitempty" yaml:"googleServicesFile,omitempty"`
	IntentFilters      []IntentFilter `json:"intentFilters" yaml:"intentFilters"`
}

// AdaptiveIcon is the Android adaptive launcher icon.
type AdaptiveIcon struct {
	ForegroundImage string `json:"foregroundImage" yaml:"foregroundImage"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// IntentFilter declares which URLs open the app. Filters are matched in
// declaration order.
type IntentFilter struct {
	Action     string       `json:"action" yaml:"action"`
	AutoVerify *bool        `json:"autoVerify,omitempty" yaml:"autoVerify,omitempty"`
	Data       []IntentData `json:"data" yaml:"data"`
	Category   []string     `json:"category" yaml:"category"`
}

// IntentData is one URL pattern of an intent filter. Scheme is required.
type IntentData struct {
	Scheme      string `json:"scheme" yaml:"scheme"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty"`
	PathPrefix  string `json:"pathPrefix,omitempty" yaml:"pathPrefix,omitempty"`
	PathPattern string `json:"pathPattern,omitempty" yaml:"pathPattern,omitempty"`
}

// Extra carries values exposed to the app at runtime.
type Extra struct {
	EAS EAS `json:"eas" yaml:"eas"`
}

// EAS holds the build service settings.
type EAS struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	// StorybookEnabled is passed through verbatim and omitted when unset.
	StorybookEnabled *string `json:"storybookEnabled,omitempty" yaml:"storybookEnabled,omitempty"`
}

// NavigationBar styles the Android system navigation bar.
type NavigationBar struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// Plugin is a plugin reference. Without options it encodes as the bare name,
// otherwise as a [name, options] pair.
type Plugin struct {
	Name    string
	Options any
}

// MarshalJSON implements json.Marshaler.
func (p Plugin) MarshalJSON() ([]byte, error) {
	if p.Options == nil {
		return json.Marshal(p.Name)
	}
	return json.Marshal([]any{p.Name, p.Options})
}

// MarshalYAML implements yaml.Marshaler.
func (p Plugin) MarshalYAML() (any, error) {
	if p.Options == nil {
		return p.Name, nil
	}
	return []any{p.Name, p.Options}, nil
}

// String returns the plugin name.
func (p Plugin) String() string {
	return p.Name
}

var (
	_ json.Marshaler = Plugin{}
	_ yaml.Marshaler = Plugin{}
	_ fmt.Stringer   = Plugin{}
)

// PermissionsOptions configures react-native-permissions.
type PermissionsOptions struct {
	IOSPermissions []string `json:"iosPermissions" yaml:"iosPermissions"`
}

// CrashReportingOptions configures the Sentry plugin.
type CrashReportingOptions struct {
	URL          string `json:"url" yaml:"url"`
	Project      string `json:"project" yaml:"project"`
	Organization string `json:"organization" yaml:"organization"`
}

// BuildPropertiesOptions configures expo-build-properties.
type BuildPropertiesOptions struct {
	Android AndroidBuildProperties `json:"android" yaml:"android"`
	IOS     IOSBuildProperties     `json:"ios" yaml:"ios"`
}

// AndroidBuildProperties are the Gradle build settings.
type AndroidBuildProperties struct {
	MinSdkVersion                 int  `json:"minSdkVersion" yaml:"minSdkVersion"`
	CompileSdkVersion             int  `json:"compileSdkVersion" yaml:"compileSdkVersion"`
	TargetSdkVersion              int  `json:"targetSdkVersion" yaml:"targetSdkVersion"`
	EnableProguardInReleaseBuilds bool `json:"enableProguardInReleaseBuilds" yaml:"enableProguardInReleaseBuilds"`
}

// IOSBuildProperties are the CocoaPods build settings.
type IOSBuildProperties struct {
	UseFrameworks string `json:"useFrameworks" yaml:"useFrameworks"`
}
