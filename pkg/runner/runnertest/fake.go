// Package runnertest provides a scripted runner.Runner for tests, so the
// pipeline can be exercised without spawning cargo, npm or git.
package runnertest

import (
	"context"
	"strings"

	"github.com/agentfs/update-version/pkg/runner"
)

// Call is one invocation recorded by a Fake.
type Call struct {
	Dir     string
	Command string
	Args    []string
}

func (c Call) String() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// Fake records every call it receives. Without a hook each call succeeds
// with empty output.
type Fake struct {
	Calls []Call

	// OnRun, when set, decides the outcome of each call.
	OnRun func(c Call) (runner.Result, error)
}

var _ runner.Runner = (*Fake)(nil)

func (f *Fake) Run(ctx context.Context, dir, command string, args ...string) (runner.Result, error) {
	call := Call{Dir: dir, Command: command, Args: args}
	f.Calls = append(f.Calls, call)
	if f.OnRun != nil {
		return f.OnRun(call)
	}
	return runner.Result{}, nil
}

// Commandlines flattens the recorded calls for order assertions.
func (f *Fake) Commandlines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}
