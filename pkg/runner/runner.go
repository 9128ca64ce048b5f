package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external commands. The pipeline only talks to the package
// managers and git through this interface so tests can substitute a fake
// without spawning real tools.
type Runner interface {
	Run(ctx context.Context, dir, command string, args ...string) (Result, error)
}

// Result captures one finished invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran to completion with a non-zero exit
// status. Stderr carries the tool's own diagnostics.
type ExitError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	cmdline := strings.Join(append([]string{e.Command}, e.Args...), " ")
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", cmdline, e.ExitCode, e.Stderr)
}

// ExecRunner runs commands with os/exec, blocking until they finish.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, dir, command string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitError{
			Command:  command,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   strings.TrimSpace(res.Stderr),
		}
	}

	// The command never produced an exit status (missing binary, bad dir).
	res.ExitCode = -1
	return res, fmt.Errorf("failed to run %s: %w", command, err)
}
