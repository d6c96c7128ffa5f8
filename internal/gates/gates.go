// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gates runs external quality-gate commands (typecheck, lint,
// build) and captures their outcomes. Gates are potentially-failing black
// boxes: a failing command becomes a failed gate result, never an error
// up the stack, and nothing is retried.
package gates

import (
	"context"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dabighomie/handoff/internal/config"
)

// DefaultTimeout bounds a single gate command.
const DefaultTimeout = 2 * time.Minute

// CommandRunner executes a shell command in a directory and returns its
// combined output. Injected so tests never shell out.
type CommandRunner func(ctx context.Context, command, dir string) ([]byte, error)

// ShellRunner is the real CommandRunner.
func ShellRunner(ctx context.Context, command, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Result is the captured outcome of one gate.
type Result struct {
	Name       string
	Required   bool
	Passed     bool
	ErrorCount int
	Output     string
}

// Runner executes the enabled gates of a config.
type Runner struct {
	Dir     string
	Timeout time.Duration
	Run     CommandRunner
}

// NewRunner builds a runner for a project directory with the real shell
// backend and default timeout.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Timeout: DefaultTimeout, Run: ShellRunner}
}

// RunAll executes every enabled gate in name order and returns all
// results. Execution continues past failures.
func (r *Runner) RunAll(ctx context.Context, cfg config.Config) []Result {
	names := make([]string, 0, len(cfg.Gates))
	for name, gate := range cfg.Gates {
		if gate.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, r.runOne(ctx, name, cfg.Gates[name]))
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, name string, gate config.Gate) Result {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := r.Run
	if run == nil {
		run = ShellRunner
	}

	out, err := run(ctx, gate.Command, r.Dir)
	output := strings.TrimSpace(string(out))
	res := Result{
		Name:     name,
		Required: gate.Required,
		Passed:   err == nil,
		Output:   output,
	}
	if err != nil {
		res.ErrorCount = countErrors(output)
		if res.ErrorCount == 0 {
			res.ErrorCount = 1 // the failure itself
		}
	}
	return res
}

var errorTokenRe = regexp.MustCompile(`(?i)\berrors?\b`)

// countErrors estimates how many errors a failing command reported by
// counting lines that mention one.
func countErrors(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if errorTokenRe.MatchString(line) {
			count++
		}
	}
	return count
}

// AllRequiredPassed reports whether every required gate passed.
func AllRequiredPassed(results []Result) bool {
	for _, r := range results {
		if r.Required && !r.Passed {
			return false
		}
	}
	return true
}
