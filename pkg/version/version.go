package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags "-X github.com/mutablelogic/go-openai/pkg/version.GitTag=..."
var (
	GitTag    string
	GitBranch string
)

const (
	// Product is the name sent in the User-Agent header
	Product = "go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, the branch or the short revision of the build,
// or "dev" when none is known
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if revision := setting("vcs.revision"); len(revision) >= 12 {
		return revision[:12]
	}
	return "dev"
}

// UserAgent returns the User-Agent header value for API requests
func UserAgent() string {
	return Product + "/" + Version() + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}

// JSON returns build metadata for the named executable as indented JSON
func JSON(execName string) []byte {
	metadata := map[string]string{
		"name":     execName,
		"product":  Product,
		"version":  Version(),
		"compiler": runtime.Version(),
		"platform": runtime.GOOS + "/" + runtime.GOARCH,
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	for key, name := range map[string]string{
		"vcs.revision": "hash",
		"vcs.time":     "build_time",
	} {
		if value := setting(key); value != "" {
			metadata[name] = value
		}
	}
	if setting("vcs.modified") == "true" {
		metadata["modified"] = "true"
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return ""
}
