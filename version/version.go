// Package version reports which seqkit release is linked into a binary.
package version

import (
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of the seqkit module.
const ModulePath = "github.com/kbukum/seqkit"

// Version overrides the detected module version when set at build time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=v1.2.0"
var Version = ""

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	Sum       string `json:"sum,omitempty"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	// Replaced is true when the module is swapped by a replace directive.
	Replaced bool `json:"replaced"`
}

var readBuildInfo = debug.ReadBuildInfo

// GetVersionInfo returns the version of seqkit found in the running binary's
// build information. A linker-set Version wins; otherwise the module entry is
// looked up among the dependencies, or the main module when seqkit itself is
// being built. Unknown versions report "dev".
func GetVersionInfo() *Info {
	info := &Info{Version: "dev"}

	if buildInfo, ok := readBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		if mod := findModule(buildInfo); mod != nil {
			if mod.Replace != nil {
				info.Replaced = true
				mod = mod.Replace
			}
			if mod.Version != "" && mod.Version != "(devel)" {
				info.Version = mod.Version
			}
			info.Sum = mod.Sum
		}
	}

	if Version != "" {
		info.Version = Version
	}
	info.IsRelease = isRelease(info.Version)

	return info
}

func findModule(buildInfo *debug.BuildInfo) *debug.Module {
	if buildInfo.Main.Path == ModulePath {
		return &buildInfo.Main
	}
	for _, dep := range buildInfo.Deps {
		if dep.Path == ModulePath {
			return dep
		}
	}
	return nil
}

// isRelease reports whether v is a tagged version rather than a development
// or pseudo-version.
func isRelease(v string) bool {
	if v == "dev" || strings.Contains(v, "dirty") || strings.Contains(v, "+incompatible") {
		return false
	}
	// Pseudo-versions end in -yyyymmddhhmmss-abcdefabcdef.
	parts := strings.Split(v, "-")
	if len(parts) >= 3 && len(parts[len(parts)-1]) == 12 && len(parts[len(parts)-2]) >= 14 {
		return false
	}
	return strings.HasPrefix(v, "v")
}

// GetShortVersion returns the bare version string.
func GetShortVersion() string {
	return GetVersionInfo().Version
}
