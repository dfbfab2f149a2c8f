package common

import "runtime/debug"

// Version is the bot's version string. It can be overridden at build time with
// -ldflags "-X github.com/steward-bot/steward/common.Version=v1.2.3"; otherwise
// it falls back to the VCS revision baked into the binary.
var Version string

func init() {
	if Version != "" {
		return
	}
	Version = "(devel)"

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
		return
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			v := s.Value
			if len(v) > 12 {
				v = v[:12]
			}
			Version = v
			return
		}
	}
}
