package project

import (
	"context"
	"errors"
)

type Type string

const (
	TypeCargo Type = "cargo"
	TypeNode  Type = "node"
)

// ErrVersionFieldNotFound indicates a manifest with no version field to
// rewrite. The caller treats it as a warning for that component, not a
// fatal error.
var ErrVersionFieldNotFound = errors.New("no version field found")

// Handler defines the interface for ecosystem-specific manifest operations
type Handler interface {
	// Manifest and lock file names for this ecosystem
	ManifestName() string
	LockfileName() string

	// Version management
	GetVersion(manifestPath string) (string, error)
	SetVersion(manifestPath string, version string) error

	// Lock regeneration via the ecosystem's own tool
	RegenerateLockfile(ctx context.Context, dir string) error
}
