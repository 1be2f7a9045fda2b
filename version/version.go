package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/TheBrightSide/symphonia-xm-ext/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a
// -dirty suffix when the working tree had local changes.
var Hash = vcsHash()

// VersionOrHash is Version when one was set at build time, the VCS
// hash otherwise.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

func vcsHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	revision, modified := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}
