// Package buildinfo reports which pumlgen build is running.
//
// Release builds stamp Version, Commit and Date through the linker:
//
//	go build -ldflags "-X github.com/matzehuels/pumlgen/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pumlgen/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/pumlgen/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries produced by "go install github.com/matzehuels/pumlgen/cmd/pumlgen@latest"
// carry no stamp; [Get] then falls back to the module version and VCS data
// the toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Linker-stamped values. Left at their defaults for unstamped builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info identifies one pumlgen binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the stamped build information, completed from the embedded
// module data where a field was not stamped.
func Get() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		bi = nil
	}
	return resolve(Info{Version: Version, Commit: Commit, Date: Date}, bi)
}

func resolve(stamped Info, bi *debug.BuildInfo) Info {
	info := stamped
	if bi == nil {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String renders the one-line form printed by "pumlgen --version".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// Template is the cobra version template for the root command.
func Template() string {
	return "{{.Name}} " + Get().String() + "\n"
}
