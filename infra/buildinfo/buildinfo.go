// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// BuildInfo holds the version of the binary.
type BuildInfo struct {
	Version    string // e.g. v0.3.0
	CommitHash string // vcs revision
}

func (b BuildInfo) String() string {
	return b.Version + "-" + b.CommitHash
}

var (
	// go build -ldflags "-X github.com/noteui/androidutil/infra/buildinfo.version=v0.1.2 -X github.com/noteui/androidutil/infra/buildinfo.commitHash=###"
	version    string = "dev"
	commitHash string = "none"
)

// Get returns BuildInfo given by linker flags.
// Fields not given by them are filled from the module and vcs
// information embedded by the go command, if any.
func Get() BuildInfo {
	return fill(BuildInfo{Version: version, CommitHash: commitHash}, debug.ReadBuildInfo)
}

func fill(b BuildInfo, read func() (*debug.BuildInfo, bool)) BuildInfo {
	info, ok := read()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	if b.CommitHash == "none" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				b.CommitHash = s.Value
				break
			}
		}
	}
	return b
}
