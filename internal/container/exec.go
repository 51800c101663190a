package container

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// ErrSpawn marks failures to launch the runtime binary at all
// (missing executable, permission denied, pipe creation failure).
var ErrSpawn = errors.New("command failed to start")

// maxCaptureLine bounds a single line read in capture mode.
const maxCaptureLine = 64 * 1024

// Executor runs the container runtime CLI.
type Executor interface {
	// Run executes the runtime with the operator's terminal attached and
	// blocks until it exits. Non-zero exits return *ExitError; launch
	// failures return *SpawnError.
	Run(ctx context.Context, args ...string) error

	// Capture executes the runtime with stdout redirected to a pipe and
	// returns the output lines without their line terminators.
	Capture(ctx context.Context, args ...string) ([]string, error)
}

// ExitError reports a runtime invocation that exited with a non-zero status.
type ExitError struct {
	Runtime string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Runtime, e.Code)
}

// SpawnError reports a runtime invocation that could not be started.
type SpawnError struct {
	Runtime string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Runtime, e.Err)
}

func (e *SpawnError) Unwrap() []error {
	return []error{ErrSpawn, e.Err}
}

// OSExecutor executes the runtime binary via exec.CommandContext.
// Arguments are passed as a vector; no shell is involved.
type OSExecutor struct {
	// Runtime is the binary name or path (e.g., "docker")
	Runtime string

	// Stdin, Stdout and Stderr default to the process streams when nil
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger logrus.FieldLogger

	// Progress shows a spinner on Stderr while Capture runs
	Progress bool
}

// NewOSExecutor creates an executor for runtime bound to the process streams.
func NewOSExecutor(runtime string, logger logrus.FieldLogger) *OSExecutor {
	return &OSExecutor{
		Runtime: runtime,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}
}

// Run implements Executor.
func (e *OSExecutor) Run(ctx context.Context, args ...string) error {
	e.trace(args)

	cmd := exec.CommandContext(ctx, e.Runtime, args...)
	cmd.Stdin = e.stdin()
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	// The child shares our terminal; Ctrl+C belongs to it while it runs.
	release := holdInterrupts()
	defer release()

	if err := cmd.Start(); err != nil {
		return e.spawnError(err)
	}
	return e.waitError(cmd.Wait())
}

// Capture implements Executor.
func (e *OSExecutor) Capture(ctx context.Context, args ...string) ([]string, error) {
	e.trace(args)

	cmd := exec.CommandContext(ctx, e.Runtime, args...)
	cmd.Stderr = e.stderr()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, e.spawnError(err)
	}

	if e.Progress {
		opt := spinner.WithWriter(e.stderr())
		if f, ok := e.stderr().(*os.File); ok {
			opt = spinner.WithWriterFile(f)
		}
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opt)
		s.Suffix = " " + e.Runtime + " " + firstArg(args)
		s.Start()
		defer s.Stop()
	}

	if err := cmd.Start(); err != nil {
		return nil, e.spawnError(err)
	}

	lines, readErr := readLines(stdout)
	if readErr != nil {
		// Drain so the child can finish writing before Wait closes the pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}
	waitErr := e.waitError(cmd.Wait())

	if readErr != nil {
		return lines, fmt.Errorf("read %s output: %w", e.Runtime, readErr)
	}
	return lines, waitErr
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), maxCaptureLine)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (e *OSExecutor) waitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		e.logger().WithField("code", code).Info("runtime exited with non-zero status")
		return &ExitError{Runtime: e.Runtime, Code: code}
	}
	return fmt.Errorf("wait for %s: %w", e.Runtime, err)
}

func (e *OSExecutor) spawnError(err error) error {
	e.logger().WithError(err).Info("runtime failed to start")
	return &SpawnError{Runtime: e.Runtime, Err: err}
}

func (e *OSExecutor) trace(args []string) {
	e.logger().Debugf("+ %s %s", e.Runtime, strings.Join(RedactArgs(args), " "))
}

func (e *OSExecutor) logger() logrus.FieldLogger {
	if e.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return e.Logger
}

func (e *OSExecutor) stdin() io.Reader {
	if e.Stdin == nil {
		return os.Stdin
	}
	return e.Stdin
}

func (e *OSExecutor) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *OSExecutor) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}

// RedactArgs masks the value of every `-e KEY=VALUE` pair for logging.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 1; i < len(out); i++ {
		if out[i-1] != "-e" {
			continue
		}
		if key, _, ok := strings.Cut(out[i], "="); ok {
			out[i] = key + "=***"
		}
	}
	return out
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// holdInterrupts swallows SIGINT until the returned func is called.
func holdInterrupts() func() {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt)

	go func() {
		for {
			select {
			case <-signals:
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}

// Verify OSExecutor implements Executor interface
var _ Executor = (*OSExecutor)(nil)
