// Package infoplist renders the iOS block of a manifest as property lists.
package infoplist

import (
	"fmt"
	"io"

	"howett.net/plist"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/manifest"
)

// Info is the subset of Info.plist derived from the manifest.
type Info struct {
	CFBundleIdentifier             string    `plist:"CFBundleIdentifier"`
	CFBundleURLTypes               []URLType `plist:"CFBundleURLTypes,omitempty"`
	NSCameraUsageDescription       string    `plist:"NSCameraUsageDescription,omitempty"`
	NSPhotoLibraryUsageDescription string    `plist:"NSPhotoLibraryUsageDescription,omitempty"`
	NSMicrophoneUsageDescription   string    `plist:"NSMicrophoneUsageDescription,omitempty"`
	NSAppleMusicUsageDescription   string    `plist:"NSAppleMusicUsageDescription,omitempty"`
	UIBackgroundModes              []string  `plist:"UIBackgroundModes,omitempty"`
	UIRequiresFullScreen           bool      `plist:"UIRequiresFullScreen"`
	ITSAppUsesNonExemptEncryption  bool      `plist:"ITSAppUsesNonExemptEncryption"`
}

// URLType registers custom URL schemes.
type URLType struct {
	CFBundleURLSchemes []string `plist:"CFBundleURLSchemes"`
}

// EntitlementAssociatedDomains is the entitlement key for universal links.
const EntitlementAssociatedDomains = "com.apple.developer.associated-domains"

// NewInfo builds the Info.plist dictionary for m.
func NewInfo(m *manifest.Manifest) *Info {
	p := m.IOS.InfoPlist
	info := &Info{
		CFBundleIdentifier:             m.IOS.BundleIdentifier,
		NSCameraUsageDescription:       p.NSCameraUsageDescription,
		NSPhotoLibraryUsageDescription: p.NSPhotoLibraryUsageDescription,
		NSMicrophoneUsageDescription:   p.NSMicrophoneUsageDescription,
		NSAppleMusicUsageDescription:   p.NSAppleMusicUsageDescription,
		UIBackgroundModes:              append([]string(nil), p.UIBackgroundModes...),
		UIRequiresFullScreen:           !m.IOS.SupportsTablet,
		ITSAppUsesNonExemptEncryption:  p.ITSAppUsesNonExemptEncryption,
	}
	if m.Scheme != "" {
		info.CFBundleURLTypes = []URLType{{CFBundleURLSchemes: []string{m.Scheme}}}
	}
	return info
}

// Entitlements builds the entitlements dictionary for m.
func Entitlements(m *manifest.Manifest) map[string]any {
	out := make(map[string]any, len(m.IOS.Entitlements)+1)
	for k, v := range m.IOS.Entitlements {
		out[k] = v
	}
	if len(m.IOS.AssociatedDomains) > 0 {
		out[EntitlementAssociatedDomains] = append([]string(nil), m.IOS.AssociatedDomains...)
	}
	return out
}

// Render writes the Info.plist for m to w as XML.
func Render(w io.Writer, m *manifest.Manifest) error {
	return encode(w, NewInfo(m), "Info.plist")
}

// RenderEntitlements writes the entitlements plist for m to w as XML.
func RenderEntitlements(w io.Writer, m *manifest.Manifest) error {
	return encode(w, Entitlements(m), "entitlements")
}

func encode(w io.Writer, v any, what string) error {
	enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
	enc.Indent("\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", what, err)
	}
	return nil
}
