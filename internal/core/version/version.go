// Package version carries build metadata for the slotfinder binaries
package version

import "runtime"

// Engine is bumped whenever slot resolution output can change for the same input
const Engine = 1

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Engine    int    `json:"engine"`
}

// Info returns the build information
// version, commit and date are set with -ldflags "-X 'slotfinder/internal/core/version.version=v0.1.0'"
func Info() BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Engine:    Engine,
	}
}

// Service is the binary name reported by meta endpoints and logs
func Service() string { return service }

var (
	service = "slotfinder-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
