package project

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/agentfs/update-version/pkg/runner"
)

// cargoVersionPattern ties the [package] section header to the first
// version assignment after it. Only that first match is rewritten, so
// version keys under [dependencies] and friends are never touched.
var cargoVersionPattern = regexp.MustCompile(`(?ms)(^\[package\].*?^version\s*=\s*)"[^"]*"`)

type CargoHandler struct {
	run runner.Runner
}

func NewCargoHandler(run runner.Runner) *CargoHandler {
	return &CargoHandler{run: run}
}

func (h *CargoHandler) ManifestName() string { return "Cargo.toml" }

func (h *CargoHandler) LockfileName() string { return "Cargo.lock" }

func (h *CargoHandler) GetVersion(manifestPath string) (string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var manifest struct {
		Package struct {
			Version string `toml:"version"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	if manifest.Package.Version == "" {
		return "", fmt.Errorf("%w in %s", ErrVersionFieldNotFound, manifestPath)
	}
	return manifest.Package.Version, nil
}

// SetVersion splices the new quoted value over the old one. Every byte
// outside the match survives as-is, comments and key order included.
func (h *CargoHandler) SetVersion(manifestPath string, version string) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	loc := cargoVersionPattern.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%w in %s", ErrVersionFieldNotFound, manifestPath)
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(version))
	buf.Write(data[:loc[3]]) // everything through `version = `
	buf.WriteString(`"` + version + `"`)
	buf.Write(data[loc[1]:]) // everything after the old quoted value

	if err := os.WriteFile(manifestPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	return nil
}

func (h *CargoHandler) RegenerateLockfile(ctx context.Context, dir string) error {
	if _, err := h.run.Run(ctx, dir, "cargo", "generate-lockfile"); err != nil {
		return fmt.Errorf("cargo generate-lockfile in %s: %w", dir, err)
	}
	return nil
}
