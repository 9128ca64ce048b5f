package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// The repository root is the directory holding both of these trees. The
// probe is a plain existence check.
const (
	markerCLI = "cli"
	markerSDK = "sdk"
)

// ErrRootNotFound indicates no ancestor directory contained both markers.
var ErrRootNotFound = errors.New("project root not found")

// FindRoot searches upward from startDir (current directory when empty) to
// find the repository root.
func FindRoot(startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	// Make startDir absolute
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	current := absStart
	for {
		if hasMarkers(current) {
			return current, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			// Reached root of filesystem
			break
		}
		current = parent
	}

	return "", fmt.Errorf("%w: no directory containing both %s/ and %s/ in %s or parent directories",
		ErrRootNotFound, markerCLI, markerSDK, absStart)
}

func hasMarkers(dir string) bool {
	for _, marker := range []string{markerCLI, markerSDK} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
			return false
		}
	}
	return true
}
