package manifest

import (
	"fmt"
	"slices"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"
)

// Assemble resolves in and builds the manifest. The only error it returns is
// a *config.MisconfiguredInputError from resolution; once inputs resolve,
// building and merging cannot fail.
func Assemble(in config.InputSet) (*Manifest, error) {
	r, err := config.Resolve(in)
	if err != nil {
		return nil, err
	}
	return Build(r), nil
}

// Build merges the sections derived from r into a fresh skeleton.
func Build(r *config.Resolved) *Manifest {
	m := Skeleton()
	merge(m, r, buildSections(r))
	return m
}

func merge(m *Manifest, r *config.Resolved, s sections) {
	m.Slug = r.Slug
	m.Extra.EAS.ProjectID = r.ProjectID
	if r.StorybookEnabled != nil {
		v := *r.StorybookEnabled
		m.Extra.EAS.StorybookEnabled = &v
	}

	if s.hasIOSCredentials {
		mustBeUnset(SectionIOSCredentials, m.IOS.GoogleServicesFile)
		m.IOS.GoogleServicesFile = s.iosCredentials
	}
	if s.hasAndroidCredentials {
		mustBeUnset(SectionAndroidCredentials, m.Android.GoogleServicesFile)
		m.Android.GoogleServicesFile = s.androidCredentials
	}
	if s.hasCrashReporting {
		m.Plugins = insertBefore(m.Plugins, PluginBuildProperties, s.crashReporting)
	}
}

// mustBeUnset panics when a conditional key collides with a key the skeleton
// already sets. That is an authoring error in the skeleton.
func mustBeUnset(key, current string) {
	if current != "" {
		panic(fmt.Sprintf("manifest: skeleton already sets %s", key))
	}
}

// insertBefore inserts p ahead of the plugin named anchor. The skeleton must
// declare anchor.
func insertBefore(plugins []Plugin, anchor string, p Plugin) []Plugin {
	i := slices.IndexFunc(plugins, func(q Plugin) bool { return q.Name == anchor })
	if i < 0 {
		panic(fmt.Sprintf("manifest: skeleton has no %s plugin", anchor))
	}
	return slices.Insert(plugins, i, p)
}
