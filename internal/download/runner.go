package download

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// ExecRunner runs programs with os/exec, discarding stdout and capturing stderr
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and waits for it to exit
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return RunResult{ExitCode: -1}, err
	}

	err := cmd.Wait()
	result := RunResult{ExitCode: 0, Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	// Wait failed for a reason other than the exit status (I/O copy error)
	result.ExitCode = -1
	return result, err
}
