// Package platformtest provides a scripted platform.Runner for tests.
package platformtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/igormcsouza/omni-pkg/pkg/platform"
)

// Response is the scripted result of one command line
type Response struct {
	Stdout   string
	ExitCode int
}

// Runner answers commands from a table keyed by the full command line.
// A binary with no registered command lines is reported as not installed;
// an unregistered command line of a known binary exits with status 1.
type Runner struct {
	responses map[string]Response
	binaries  map[string]bool

	// Calls records every command line in invocation order
	Calls []string

	// OnRun, when set, is called before each command is answered
	OnRun func(ctx context.Context, cmdline string)
}

// New returns an empty Runner where no binary is installed
func New() *Runner {
	return &Runner{
		responses: make(map[string]Response),
		binaries:  make(map[string]bool),
	}
}

// On registers the response for cmdline ("apt list --installed vim")
func (r *Runner) On(cmdline string, resp Response) *Runner {
	r.responses[cmdline] = resp
	if fields := strings.Fields(cmdline); len(fields) > 0 {
		r.binaries[fields[0]] = true
	}
	return r
}

// Output registers a successful response printing stdout
func (r *Runner) Output(cmdline, stdout string) *Runner {
	return r.On(cmdline, Response{Stdout: stdout})
}

// Install marks bin as present without scripting any command line
func (r *Runner) Install(bin string) *Runner {
	r.binaries[bin] = true
	return r
}

// Run implements platform.Runner
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, cmdline)
	if r.OnRun != nil {
		r.OnRun(ctx, cmdline)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.binaries[name] {
		return nil, fmt.Errorf("%s: %w", name, platform.ErrCommandNotFound)
	}

	resp, ok := r.responses[cmdline]
	if !ok {
		return nil, &platform.ExitError{Command: cmdline, Code: 1}
	}
	if resp.ExitCode != 0 {
		return []byte(resp.Stdout), &platform.ExitError{Command: cmdline, Code: resp.ExitCode}
	}
	return []byte(resp.Stdout), nil
}

// LookPath implements platform.Runner
func (r *Runner) LookPath(name string) (string, error) {
	if !r.binaries[name] {
		return "", fmt.Errorf("%s: %w", name, platform.ErrCommandNotFound)
	}
	return "/usr/bin/" + name, nil
}

var _ platform.Runner = (*Runner)(nil)
