package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkeleton_Valid(t *testing.T) {
	assert.NoError(t, Validate(Skeleton()))
}

func TestSkeleton_ConditionalKeysUnset(t *testing.T) {
	m := Skeleton()
	assert.Empty(t, m.IOS.GoogleServicesFile)
	assert.Empty(t, m.Android.GoogleServicesFile)
	assert.Nil(t, m.Extra.EAS.StorybookEnabled)
	assert.NotContains(t, pluginNames(m), PluginCrashReporting)
	assert.Contains(t, pluginNames(m), PluginBuildProperties)
}

func TestSkeleton_IntentOrder(t *testing.T) {
	filters := Skeleton().Android.IntentFilters
	require.Len(t, filters, 2)

	https := filters[0]
	require.NotNil(t, https.AutoVerify)
	assert.True(t, *https.AutoVerify)
	assert.Equal(t, []IntentData{{
		Scheme:      "https",
		Host:        "echat.eyingbao.com",
		PathPrefix:  "/app/accounts/",
		PathPattern: "/*/conversations/*",
	}}, https.Data)

	custom := filters[1]
	assert.Nil(t, custom.AutoVerify)
	assert.Equal(t, []IntentData{{Scheme: "echatapp"}}, custom.Data)
}

func TestSkeleton_FreshCopy(t *testing.T) {
	a := Skeleton()
	a.Android.Permissions[0] = "mutated"
	a.IOS.InfoPlist.UIBackgroundModes[0] = "mutated"
	a.IOS.Entitlements["aps-environment"] = "development"
	a.Android.IntentFilters[0].Data[0].Host = "mutated"
	*a.Android.IntentFilters[0].AutoVerify = false
	a.Plugins[1].Options.(*PermissionsOptions).IOSPermissions[0] = "mutated"
	a.Plugins = a.Plugins[:1]

	b := Skeleton()
	assert.Equal(t, "android.permission.CAMERA", b.Android.Permissions[0])
	assert.Equal(t, "fetch", b.IOS.InfoPlist.UIBackgroundModes[0])
	assert.Equal(t, "production", b.IOS.Entitlements["aps-environment"])
	assert.Equal(t, "echat.eyingbao.com", b.Android.IntentFilters[0].Data[0].Host)
	assert.True(t, *b.Android.IntentFilters[0].AutoVerify)
	assert.Equal(t, "Camera", b.Plugins[1].Options.(*PermissionsOptions).IOSPermissions[0])
	assert.Equal(t, basePlugins, pluginNames(b))
}
