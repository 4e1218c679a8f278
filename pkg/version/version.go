// Package version reports the build version recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is overridable at build time with -ldflags.
	Version   = "(dev)"
	buildInfo = debug.BuildInfo{}
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		buildInfo = *bi
		if len(bi.Main.Version) > 0 {
			Version = bi.Main.Version
		}
	}
}

// GetMore returns a one-line version string, or the full module build
// info when mod is true.
func GetMore(mod bool) string {
	if mod {
		info := buildInfo.String()
		if len(info) > 0 {
			return fmt.Sprintf("\t%s\n", strings.ReplaceAll(info[:len(info)-1], "\n", "\n\t"))
		}
	}
	return fmt.Sprintf("version %s %s %s/%s\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
