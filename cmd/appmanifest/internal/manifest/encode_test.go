package manifest

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"
)

func encodeJSON(t *testing.T, m *Manifest) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, FormatJSON))
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestEncodeJSON_AbsentKeysAreOmitted(t *testing.T) {
	out := encodeJSON(t, assemble(t, nil))

	ios := out["ios"].(map[string]any)
	android := out["android"].(map[string]any)
	eas := out["extra"].(map[string]any)["eas"].(map[string]any)

	assert.NotContains(t, ios, "googleServicesFile")
	assert.NotContains(t, android, "googleServicesFile")
	assert.NotContains(t, eas, "storybookEnabled")
	assert.Equal(t, config.DefaultProjectID, eas["projectId"])

	custom := android["intentFilters"].([]any)[1].(map[string]any)
	assert.NotContains(t, custom, "autoVerify")
	assert.Equal(t, []any{map[string]any{"scheme": "echatapp"}}, custom["data"])
}

func TestEncodeJSON_PresentKeys(t *testing.T) {
	out := encodeJSON(t, assemble(t, map[string]string{
		config.InputIOSCredentialsPath: "./GoogleService-Info.plist",
		config.InputStorybookEnabled:   "",
	}))

	assert.Equal(t, "./GoogleService-Info.plist", out["ios"].(map[string]any)["googleServicesFile"])
	eas := out["extra"].(map[string]any)["eas"].(map[string]any)
	assert.Contains(t, eas, "storybookEnabled")
	assert.Equal(t, "", eas["storybookEnabled"])
}

func TestEncodeJSON_PluginShapes(t *testing.T) {
	out := encodeJSON(t, assemble(t, map[string]string{
		config.InputCrashReportingProject: "p",
		config.InputCrashReportingOrg:     "o",
	}))

	plugins := out["plugins"].([]any)
	require.Len(t, plugins, 7)
	assert.Equal(t, "expo-font", plugins[0])
	assert.Equal(t, []any{
		PluginCrashReporting,
		map[string]any{"url": "https://sentry.io/", "project": "p", "organization": "o"},
	}, plugins[4])
	assert.Equal(t, "./with-ffmpeg-pod.js", plugins[6])
}

func TestEncodeJSON_Deterministic(t *testing.T) {
	inputs := map[string]string{
		config.InputCrashReportingProject: "p",
		config.InputCrashReportingOrg:     "o",
	}
	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, assemble(t, inputs), FormatJSON))
	require.NoError(t, Encode(&b, assemble(t, inputs), FormatJSON))
	assert.Equal(t, a.String(), b.String())
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, assemble(t, map[string]string{
		config.InputAndroidCredentialsPath: "./google-services.json",
	}), FormatYAML))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "./google-services.json", out["android"].(map[string]any)["googleServicesFile"])
	assert.NotContains(t, out["ios"].(map[string]any), "googleServicesFile")

	plugins := out["plugins"].([]any)
	assert.Equal(t, "expo-font", plugins[0])
	pair := plugins[1].([]any)
	assert.Equal(t, "react-native-permissions", pair[0])
	assert.Equal(t, map[string]any{"iosPermissions": []any{"Camera", "PhotoLibrary", "MediaLibrary"}}, pair[1])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
