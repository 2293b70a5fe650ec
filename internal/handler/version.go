package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// Stamped with -ldflags "-X" at release time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running binary and the record format it writes
type VersionInfo struct {
	Version       string `json:"version"`
	GoVersion     string `json:"go_version"`
	SchemaVersion int    `json:"schema_version"`
	BuildTime     string `json:"build_time,omitempty"`
	GitCommit     string `json:"git_commit,omitempty"`
}

var buildInfo = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{
		Version:       resolveVersion(),
		GoVersion:     runtime.Version(),
		SchemaVersion: domain.CurrentSchemaVersion,
		BuildTime:     BuildTime,
		GitCommit:     GitCommit,
	}
	if info.GitCommit != "unset" && info.GitCommit != "" {
		return info
	}
	// go build records the vcs revision when ldflags were not used
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.GitCommit = s.Value
			}
		}
	}
	return info
})

func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildInfo())
	}
}

func resolveVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
