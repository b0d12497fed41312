package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the application.
// fallback is used when no version was injected at build time.
// @Summary Version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(fallback string) http.HandlerFunc {
	info := VersionInfo{
		Version:   resolveVersion(fallback),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: resolveCommit(),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the ldflags value, then the configured one
func resolveVersion(fallback string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if fallback != "" {
		return fallback
	}
	return "dev"
}

// resolveCommit falls back to the VCS revision recorded by the Go toolchain
func resolveCommit() string {
	if GitCommit != "unset" && GitCommit != "" {
		return GitCommit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return GitCommit
}
