package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewInputSet_Copies(t *testing.T) {
	values := map[string]string{InputAppSlug: "a"}
	set := NewInputSet(values)
	values[InputAppSlug] = "b"
	values[InputProjectID] = "c"

	v, ok := set.Lookup(InputAppSlug)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = set.Lookup(InputProjectID)
	assert.False(t, ok)
	assert.Equal(t, 1, set.Len())
}

func TestFromEnv(t *testing.T) {
	set := FromEnv(mapLookup(map[string]string{
		"EXPO_PUBLIC_APP_SLUG":        "slug",
		"EXPO_PUBLIC_SENTRY_ORG_NAME": "",
		"UNRELATED":                   "x",
	}))

	assert.Equal(t, []string{InputAppSlug, InputCrashReportingOrg}, set.Names())

	v, ok := set.Lookup(InputCrashReportingOrg)
	assert.True(t, ok, "empty variable must stay present")
	assert.Equal(t, "", v)

	_, ok = set.Lookup(InputProjectID)
	assert.False(t, ok)
}

func TestLayer(t *testing.T) {
	base := NewInputSet(map[string]string{InputAppSlug: "base", InputProjectID: "base"})
	top := NewInputSet(map[string]string{InputProjectID: "top"})

	got := base.Layer(top)
	slug, _ := got.Lookup(InputAppSlug)
	id, _ := got.Lookup(InputProjectID)
	assert.Equal(t, "base", slug)
	assert.Equal(t, "top", id)

	// base is unchanged
	id, _ = base.Lookup(InputProjectID)
	assert.Equal(t, "base", id)

	var zero InputSet
	assert.Equal(t, 1, zero.Layer(top).Len())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultFileName), `inputs:
  app-slug: from-yaml
  project-id: yaml-project
  crash-reporting-org: yaml-org
`)
	writeFile(t, filepath.Join(dir, ".env"), `EXPO_PUBLIC_PROJECT_ID=dotenv-project
EXPO_PUBLIC_SENTRY_PROJECT_NAME=dotenv-sentry
`)

	set, err := Load(Sources{
		Dir:    dir,
		Lookup: mapLookup(map[string]string{"EXPO_PUBLIC_SENTRY_PROJECT_NAME": "env-sentry"}),
	})
	require.NoError(t, err)

	r, err := Resolve(set)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", r.Slug)
	assert.Equal(t, "dotenv-project", r.ProjectID)
	require.NotNil(t, r.CrashReporting)
	assert.Equal(t, "env-sentry", r.CrashReporting.Project)
	assert.Equal(t, "yaml-org", r.CrashReporting.Organization)
}

func TestLoad_NoFiles(t *testing.T) {
	set, err := Load(Sources{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLoad_ExplicitFilesMustExist(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(Sources{Dir: dir, ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	_, err = Load(Sources{Dir: dir, EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultFileName), "inputs: [unclosed\n")

	_, err := Load(Sources{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), DefaultFileName)
}

func TestLoadDotenv_DoesNotTouchEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ci.env")
	writeFile(t, path, "EXPO_PUBLIC_APP_SLUG=dotenv-slug\n")
	t.Setenv("EXPO_PUBLIC_APP_SLUG", "process-slug")

	set, err := LoadDotenv(path, false)
	require.NoError(t, err)
	v, _ := set.Lookup(InputAppSlug)
	assert.Equal(t, "dotenv-slug", v)
	assert.Equal(t, "process-slug", os.Getenv("EXPO_PUBLIC_APP_SLUG"))
}
