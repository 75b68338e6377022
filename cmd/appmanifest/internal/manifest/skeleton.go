package manifest

import "github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"

// Plugin names referenced by the merge.
const (
	PluginCrashReporting  = "@sentry/react-native/expo"
	PluginBuildProperties = "expo-build-properties"

	crashReportingURL = "https://sentry.io/"
)

// Skeleton returns a fresh copy of the static manifest tree. Every call
// allocates new slices and maps, so callers may modify the result.
func Skeleton() *Manifest {
	autoVerify := true
	return &Manifest{
		Name:               "EChat",
		Slug:               config.DefaultSlug,
		Version:            "4.3.0",
		Orientation:        "portrait",
		Icon:               "./assets/icon.png",
		UserInterfaceStyle: "light",
		NewArchEnabled:     false,
		Scheme:             "echatapp",
		Splash: Splash{
			Image:                       "./assets/splash.png",
			ResizeMode:                  "contain",
			BackgroundColor:             "#ffffff",
			EnableFullScreenImageLegacy: true,
		},
		IOS: IOS{
			SupportsTablet:   true,
			BundleIdentifier: "com.echat.app",
			InfoPlist: InfoPlist{
				NSCameraUsageDescription:       "This app requires access to the camera to upload images and videos.",
				NSPhotoLibraryUsageDescription: "This app requires access to the photo library to upload images.",
				NSMicrophoneUsageDescription:   "This app requires access to the microphone to record audio.",
				NSAppleMusicUsageDescription:   "This app does not use Apple Music, but a system API may require this permission.",
				UIBackgroundModes:              []string{"fetch", "remote-notification"},
				ITSAppUsesNonExemptEncryption:  false,
			},
			Entitlements:      map[string]string{"aps-environment": "production"},
			AssociatedDomains: []string{"applinks:echat.eyingbao.com"},
		},
		Android: Android{
			AdaptiveIcon: AdaptiveIcon{
				ForegroundImage: "./assets/adaptive-icon.png",
				BackgroundColor: "#ffffff",
			},
			Package:     "com.echat.app",
			Permissions: []string{"android.permission.CAMERA", "android.permission.RECORD_AUDIO"},
			IntentFilters: []IntentFilter{
				{
					Action:     "VIEW",
					AutoVerify: &autoVerify,
					Data: []IntentData{{
						Scheme:      "https",
						Host:        "echat.eyingbao.com",
						PathPrefix:  "/app/accounts/",
						PathPattern: "/*/conversations/*",
					}},
					Category: []string{"BROWSABLE", "DEFAULT"},
				},
				{
					Action:   "VIEW",
					Data:     []IntentData{{Scheme: "echatapp"}},
					Category: []string{"BROWSABLE", "DEFAULT"},
				},
			},
		},
		Extra: Extra{
			EAS: EAS{ProjectID: config.DefaultProjectID},
		},
		Owner: "bafeiyu",
		Plugins: []Plugin{
			{Name: "expo-font"},
			{Name: "react-native-permissions", Options: &PermissionsOptions{
				IOSPermissions: []string{"Camera", "PhotoLibrary", "MediaLibrary"},
			}},
			{Name: "@react-native-firebase/app"},
			{Name: "@react-native-firebase/messaging"},
			{Name: PluginBuildProperties, Options: &BuildPropertiesOptions{
				// minSdkVersion 24 is required by notifee.
				Android: AndroidBuildProperties{
					MinSdkVersion:                 24,
					CompileSdkVersion:             35,
					TargetSdkVersion:              35,
					EnableProguardInReleaseBuilds: true,
				},
				IOS: IOSBuildProperties{UseFrameworks: "static"},
			}},
			{Name: "./with-ffmpeg-pod.js"},
		},
		AndroidNavigationBar: NavigationBar{BackgroundColor: "#ffffff"},
	}
}
