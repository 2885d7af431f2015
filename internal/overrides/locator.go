package overrides

import (
	"path/filepath"
)

// DefaultSentinel is the reserved name of the build-output root directory the
// upward walk looks for.
const DefaultSentinel = "target"

// RootLocator locates the project root directory that holds the shared
// override file. Locate never fails hard; ok=false means "root unknown" and
// callers fall back to default-only resolution.
type RootLocator interface {
	Locate() (root string, ok bool)
}

// StaticLocator returns a caller-supplied root verbatim, bypassing discovery.
// Used when the build environment knows the project root outright.
type StaticLocator struct {
	Root string
}

// Locate implements RootLocator.
func (l StaticLocator) Locate() (string, bool) {
	if l.Root == "" {
		return "", false
	}
	return filepath.Clean(l.Root), true
}

// SentinelLocator discovers the project root from a build-output path hint.
// Starting at OutDir it strips path segments until the remaining path's final
// segment equals the sentinel, then returns the sentinel's parent. The walk is
// a pure path computation; it assumes the conventional layout
// <root>/<sentinel>/... and reports ok=false when the hint does not match it.
type SentinelLocator struct {
	OutDir   string
	Sentinel string
}

// Locate implements RootLocator.
func (l SentinelLocator) Locate() (string, bool) {
	if l.OutDir == "" {
		return "", false
	}
	sentinel := l.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	dir := filepath.Clean(l.OutDir)
	for {
		if filepath.Base(dir) == sentinel {
			return filepath.Dir(dir), true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Walked off the top of the path without a match.
			return "", false
		}
		dir = parent
	}
}
