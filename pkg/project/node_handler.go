package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/agentfs/update-version/pkg/runner"
)

type NodeHandler struct {
	run runner.Runner
}

func NewNodeHandler(run runner.Runner) *NodeHandler {
	return &NodeHandler{run: run}
}

func (h *NodeHandler) ManifestName() string { return "package.json" }

func (h *NodeHandler) LockfileName() string { return "package-lock.json" }

// readManifest keeps the document as an ordered map of raw values so
// re-serialization reproduces the original key order exactly.
func (h *NodeHandler) readManifest(manifestPath string) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	manifest := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	return manifest, nil
}

func (h *NodeHandler) GetVersion(manifestPath string) (string, error) {
	manifest, err := h.readManifest(manifestPath)
	if err != nil {
		return "", err
	}

	raw, ok := manifest.Get("version")
	if !ok {
		return "", fmt.Errorf("%w in %s", ErrVersionFieldNotFound, manifestPath)
	}

	var current string
	if err := json.Unmarshal(raw, &current); err != nil {
		return "", fmt.Errorf("version in %s is not a string: %w", manifestPath, err)
	}
	return current, nil
}

func (h *NodeHandler) SetVersion(manifestPath string, version string) error {
	manifest, err := h.readManifest(manifestPath)
	if err != nil {
		return err
	}

	if _, ok := manifest.Get("version"); !ok {
		return fmt.Errorf("%w in %s", ErrVersionFieldNotFound, manifestPath)
	}

	encoded, err := json.Marshal(version)
	if err != nil {
		return fmt.Errorf("encoding version: %w", err)
	}
	manifest.Set("version", json.RawMessage(encoded))

	data, err := marshalManifest(manifest)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", manifestPath, err)
	}

	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	return nil
}

// marshalManifest writes the document back in npm's own style: two-space
// indent, a space after each colon, a single trailing newline. The raw
// values pass through untouched, so strings holding &, < or > keep their
// original bytes instead of picking up \u escapes.
func marshalManifest(manifest *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for pair := manifest.Oldest(); pair != nil; pair = pair.Next() {
		if compact.Len() > 1 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(pair.Value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (h *NodeHandler) RegenerateLockfile(ctx context.Context, dir string) error {
	if _, err := h.run.Run(ctx, dir, "npm", "install"); err != nil {
		return fmt.Errorf("npm install in %s: %w", dir, err)
	}
	return nil
}
