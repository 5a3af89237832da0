package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// CommandRunner abstracts external CLI invocations (git, gh, glab). Every call
// takes an explicit working directory; the process-wide current directory is
// never changed.
type CommandRunner interface {
	// Run executes name with args in workDir and returns the combined
	// stdout/stderr output together with any execution error.
	Run(ctx context.Context, workDir string, name string, args ...string) (output string, err error)

	// LookPath reports whether the named command is available on PATH.
	LookPath(name string) bool
}

// LocalCommandRunner runs commands via os/exec with a per-invocation timeout.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner with a default 60s
// timeout per invocation.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{
		timeout: 60 * time.Second,
	}
}

// Run executes the command in workDir and returns its combined output.
func (r *LocalCommandRunner) Run(ctx context.Context, workDir string, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

// LookPath reports whether name resolves to an executable on PATH.
func (r *LocalCommandRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
