package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Recognized input names.
const (
	InputAppSlug                = "app-slug"
	InputProjectID              = "project-id"
	InputIOSCredentialsPath     = "ios-credentials-path"
	InputAndroidCredentialsPath = "android-credentials-path"
	InputCrashReportingProject  = "crash-reporting-project"
	InputCrashReportingOrg      = "crash-reporting-org"
	InputStorybookEnabled       = "storybook-enabled"
)

// Input describes one recognized input and the environment variable it is
// read from.
type Input struct {
	Name   string
	EnvVar string
	Help   string
}

// Inputs lists every recognized input in display order.
var Inputs = []Input{
	{InputAppSlug, "EXPO_PUBLIC_APP_SLUG", "application slug"},
	{InputProjectID, "EXPO_PUBLIC_PROJECT_ID", "EAS project identifier"},
	{InputIOSCredentialsPath, "EXPO_PUBLIC_IOS_GOOGLE_SERVICES_FILE", "relative path to GoogleService-Info.plist"},
	{InputAndroidCredentialsPath, "EXPO_PUBLIC_ANDROID_GOOGLE_SERVICES_FILE", "relative path to google-services.json"},
	{InputCrashReportingProject, "EXPO_PUBLIC_SENTRY_PROJECT_NAME", "Sentry project name"},
	{InputCrashReportingOrg, "EXPO_PUBLIC_SENTRY_ORG_NAME", "Sentry organization"},
	{InputStorybookEnabled, "EXPO_STORYBOOK_ENABLED", "storybook flag, passed through verbatim"},
}

// InputSet is an immutable mapping from input name to value. A name that is
// not in the set is absent, which is distinct from being set to "".
type InputSet struct {
	values map[string]string
}

// NewInputSet copies values into a new InputSet.
func NewInputSet(values map[string]string) InputSet {
	return InputSet{values: maps.Clone(values)}
}

// Lookup returns the value for name and whether it is present.
func (s InputSet) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns the present input names, sorted.
func (s InputSet) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of present inputs.
func (s InputSet) Len() int {
	return len(s.values)
}

// FromEnv builds an InputSet from an environment lookup function such as
// os.LookupEnv. Only recognized variables are read.
func FromEnv(lookup func(string) (string, bool)) InputSet {
	values := make(map[string]string)
	for _, in := range Inputs {
		if v, ok := lookup(in.EnvVar); ok {
			values[in.Name] = v
		}
	}
	return InputSet{values: values}
}

// Layer returns a new InputSet where every input present in top overrides
// the same input in s.
func (s InputSet) Layer(top InputSet) InputSet {
	values := maps.Clone(s.values)
	if values == nil {
		values = make(map[string]string)
	}
	maps.Copy(values, top.values)
	return InputSet{values: values}
}

// File represents the optional appmanifest.yaml configuration.
type File struct {
	Inputs map[string]string `yaml:"inputs"`
}

// DefaultFileName is the name of the optional configuration file.
const DefaultFileName = "appmanifest.yaml"

// LoadOptional reads appmanifest.yaml from dir if present.
func LoadOptional(dir string) (*File, error) {
	return LoadFile(filepath.Join(dir, DefaultFileName), true)
}

// LoadFile reads a configuration file. When optional is set a missing file
// yields an empty configuration.
func LoadFile(path string, optional bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &f, nil
}

// InputSet returns the file's inputs. Names are kept as written; unknown
// names are carried but never read by Resolve.
func (f *File) InputSet() InputSet {
	return NewInputSet(f.Inputs)
}

// LoadDotenv reads a dotenv file without touching the process environment
// and maps recognized variables to inputs. When optional is set a missing
// file yields an empty set.
func LoadDotenv(path string, optional bool) (InputSet, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return InputSet{}, nil
		}
		return InputSet{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}), nil
}

// Sources names the input layers to combine. Empty paths fall back to the
// defaults in Dir.
type Sources struct {
	Dir        string
	ConfigFile string
	EnvFile    string
	Lookup     func(string) (string, bool)
}

// Load combines the configuration file, the dotenv file and the environment,
// in increasing precedence.
func Load(src Sources) (InputSet, error) {
	var (
		file *File
		err  error
	)
	if src.ConfigFile != "" {
		file, err = LoadFile(src.ConfigFile, false)
	} else {
		file, err = LoadOptional(src.Dir)
	}
	if err != nil {
		return InputSet{}, err
	}

	envPath, optional := src.EnvFile, false
	if envPath == "" {
		envPath, optional = filepath.Join(src.Dir, ".env"), true
	}
	dotenv, err := LoadDotenv(envPath, optional)
	if err != nil {
		return InputSet{}, err
	}

	set := file.InputSet().Layer(dotenv)
	if src.Lookup != nil {
		set = set.Layer(FromEnv(src.Lookup))
	}
	return set, nil
}
