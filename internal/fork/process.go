package fork

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// waitDelay bounds waiting for output of children that outlive the process.
const waitDelay = 500 * time.Millisecond

// Process runs a command to completion and keeps its output.
type Process struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer

	exitCode int
}

// NewProcess returns new unstarted process instance.
func NewProcess(ctx context.Context, command string, opts ...ProcessOpt) *Process {
	p := &Process{
		cmd:      exec.CommandContext(ctx, command),
		stdout:   new(buffer),
		stderr:   new(buffer),
		exitCode: -1,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	p.cmd.WaitDelay = waitDelay

	return p
}

// Run starts the command and waits for it to exit.
// A non-zero exit code is not an error, check ExitCode.
func (p *Process) Run(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Run()
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		<-done
		return ctx.Err()
	}

	if p.cmd.ProcessState != nil {
		p.exitCode = p.cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("cannot run %q: %w", p, err)
	}
	return nil
}

// ExitCode returns exit code of the finished process or -1.
func (p *Process) ExitCode() int {
	return p.exitCode
}

// Stdout returns everything the process wrote to stdout.
func (p *Process) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process wrote to stderr.
func (p *Process) Stderr() []byte {
	return p.stderr.Bytes()
}

// String returns a human-readable representation of process command.
func (p *Process) String() string {
	return p.cmd.String()
}
