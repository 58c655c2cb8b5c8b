// Package version derives the build identity reported in logs and the
// health endpoint. An -ldflags override wins; otherwise the VCS revision
// from build info is used, falling back to "dev".
package version

import (
	"runtime/debug"
	"sync"
)

// AppName prefixes every version string.
const AppName = "codeframe"

// commitOverride can be injected at build time:
//
//	go build -ldflags "-X .../pkg/version.commitOverride=$(git rev-parse HEAD)"
var commitOverride string

const shortHashLen = 8

var commit = sync.OnceValue(func() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
})

func shorten(rev string) string {
	if len(rev) > shortHashLen {
		return rev[:shortHashLen]
	}
	return rev
}

// Commit returns the short revision this binary was built from.
func Commit() string { return commit() }

// Full returns "codeframe/<commit>" for logs and user-agent strings.
func Full() string { return AppName + "/" + commit() }
