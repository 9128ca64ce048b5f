package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agentfs/update-version/pkg/logging"
	"github.com/agentfs/update-version/pkg/runner"
)

// Client runs git operations in a single repository. All commands execute
// with the repository root as working directory, so staged paths can stay
// root-relative.
type Client struct {
	run    runner.Runner
	dir    string
	logger *logrus.Entry
}

func New(run runner.Runner, dir string) *Client {
	return &Client{
		run:    run,
		dir:    dir,
		logger: logging.NewLogger("git"),
	}
}

func (c *Client) git(ctx context.Context, args ...string) error {
	c.logger.WithField("command", "git "+strings.Join(args, " ")).Debug("Executing")
	_, err := c.run.Run(ctx, c.dir, "git", args...)
	return err
}

// Add stages exactly the given paths, relative to the repository root.
func (c *Client) Add(ctx context.Context, paths ...string) error {
	if err := c.git(ctx, append([]string{"add"}, paths...)...); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}
	return nil
}

// Commit records the staged changes.
func (c *Client) Commit(ctx context.Context, message string) error {
	if err := c.git(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}
	return nil
}

// Tag creates a lightweight tag at HEAD.
func (c *Client) Tag(ctx context.Context, name string) error {
	if err := c.git(ctx, "tag", name); err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}

// Push sends one ref to origin.
func (c *Client) Push(ctx context.Context, ref string) error {
	if err := c.git(ctx, "push", "origin", ref); err != nil {
		return fmt.Errorf("pushing %s: %w", ref, err)
	}
	return nil
}
