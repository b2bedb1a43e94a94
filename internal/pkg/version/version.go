package version

import (
	"runtime/debug"
)

// GetVersion reports the module version recorded in the build info.
func GetVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown (no build info)"
	}
	return buildInfo.Main.Version
}
