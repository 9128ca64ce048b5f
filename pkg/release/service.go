package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/agentfs/update-version/pkg/git"
	"github.com/agentfs/update-version/pkg/logging"
	"github.com/agentfs/update-version/pkg/project"
	"github.com/agentfs/update-version/pkg/runner"
)

// Status is how far a component got through the pipeline.
type Status string

const (
	StatusPending     Status = "pending"
	StatusEdited      Status = "edited"
	StatusLockUpdated Status = "lock-updated"
	StatusEditFailed  Status = "edit-failed"
	StatusLockFailed  Status = "lock-failed"
)

// Result records the terminal state of one component. A failed component
// never blocks its siblings; the error is kept here for the summary.
type Result struct {
	Component Component
	Status    Status
	Err       error
}

// ErrComponentsFailed is returned by Run when at least one component could
// not be fully updated. The per-component errors live in the results.
var ErrComponentsFailed = errors.New("some components failed to update")

// Service drives a full version update: edit every manifest, regenerate
// every lock file, re-run the final lock pass, then commit and tag.
type Service struct {
	root       string
	components []Component
	registry   *project.Registry
	git        *git.Client
	push       bool
	logger     *logrus.Entry
}

func NewService(root string, run runner.Runner, push bool) *Service {
	return &Service{
		root:       root,
		components: Components(),
		registry:   project.NewRegistry(run),
		git:        git.New(run, root),
		push:       push,
		logger:     logging.NewLogger("release"),
	}
}

// Run executes the pipeline for version. Component failures are collected,
// not fatal; everything after the component loop is.
func (s *Service) Run(ctx context.Context, version string) ([]Result, error) {
	results := make([]Result, 0, len(s.components))
	failed := false

	for _, comp := range s.components {
		res := s.updateComponent(ctx, comp, version)
		if res.Err != nil {
			failed = true
		}
		results = append(results, res)
	}

	// A partial update is never committed: bail before the final lock pass
	// and before any git operation.
	if failed {
		return results, ErrComponentsFailed
	}

	if err := s.relockAfterAll(ctx); err != nil {
		return results, err
	}

	fmt.Println("\n✅ All files and lock files updated successfully!")

	if err := s.commitAndTag(ctx, version); err != nil {
		return results, err
	}

	return results, nil
}

func (s *Service) updateComponent(ctx context.Context, comp Component, version string) Result {
	res := Result{Component: comp, Status: StatusPending}

	handler, err := s.registry.Get(comp.Type)
	if err != nil {
		res.Status = StatusEditFailed
		res.Err = err
		return res
	}

	path := filepath.Join(s.root, comp.VersionFile)
	if _, err := os.Stat(path); err != nil {
		s.logger.WithField("file", comp.VersionFile).Warn("Version file not found")
		res.Status = StatusEditFailed
		res.Err = fmt.Errorf("version file not found: %s", comp.VersionFile)
		return res
	}

	if err := handler.SetVersion(path, version); err != nil {
		s.logger.WithError(err).Warnf("Failed to update %s", comp.VersionFile)
		res.Status = StatusEditFailed
		res.Err = err
		return res
	}
	res.Status = StatusEdited
	fmt.Printf("✓ Updated %s\n", comp.VersionFile)

	if err := handler.RegenerateLockfile(ctx, filepath.Join(s.root, comp.LockDir)); err != nil {
		s.logger.WithError(err).Errorf("Failed to update %s lock file", comp.Name)
		res.Status = StatusLockFailed
		res.Err = err
		return res
	}
	res.Status = StatusLockUpdated
	fmt.Printf("✓ Updated %s lock file\n", comp.Name)

	return res
}

// relockAfterAll re-runs lock regeneration for the components marked
// RelockAfterAll. Their first pass ran before the sibling manifests were
// updated, so path dependencies still pointed at the old versions.
func (s *Service) relockAfterAll(ctx context.Context) error {
	for _, comp := range s.components {
		if !comp.RelockAfterAll {
			continue
		}

		handler, err := s.registry.Get(comp.Type)
		if err != nil {
			return err
		}
		lockRel := filepath.Join(comp.LockDir, handler.LockfileName())

		fmt.Printf("\nUpdating %s to pick up new dependency versions...\n", lockRel)
		if err := handler.RegenerateLockfile(ctx, filepath.Join(s.root, comp.LockDir)); err != nil {
			return fmt.Errorf("refreshing %s after the component pass: %w", lockRel, err)
		}
		fmt.Printf("✓ Updated %s with new dependency versions\n", lockRel)
	}
	return nil
}

func (s *Service) commitAndTag(ctx context.Context, version string) error {
	fmt.Println("\nCreating git commit and tag...")

	if err := s.git.Add(ctx, s.FilesToStage()...); err != nil {
		return err
	}

	message := CommitMessage(version)
	if err := s.git.Commit(ctx, message); err != nil {
		return err
	}
	fmt.Printf("✓ Created commit: %s\n", message)

	tag := TagName(version)
	if err := s.git.Tag(ctx, tag); err != nil {
		return err
	}
	fmt.Printf("✓ Created tag: %s\n", tag)

	if s.push {
		if err := s.git.Push(ctx, "HEAD"); err != nil {
			return err
		}
		if err := s.git.Push(ctx, tag); err != nil {
			return err
		}
		fmt.Println("✓ Pushed commit and tag to origin")
	}

	return nil
}
