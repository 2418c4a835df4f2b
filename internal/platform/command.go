package platform

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runner executes a command and returns its standard output
type runner func(name string, args ...string) ([]byte, error)

// commandError carries the standard error of a failed command
type commandError struct {
	name   string
	stderr string
	err    error
}

func (e *commandError) Error() string {
	if e.stderr == "" {
		return fmt.Sprintf("running %s: %v", e.name, e.err)
	}
	return fmt.Sprintf("running %s: %s: %v", e.name, e.stderr, e.err)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// runCommand runs a print-service client under the C locale so its output
// and diagnostics parse the same on every desktop language
func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	return collect(cmd)
}

// runInteractive runs a user-facing program in the caller's locale
func runInteractive(name string, args ...string) ([]byte, error) {
	return collect(exec.Command(name, args...))
}

func collect(cmd *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return out, &commandError{
			name:   cmd.Args[0],
			stderr: strings.TrimSpace(stderr.String()),
			err:    err,
		}
	}
	return out, nil
}

// stderrContains reports whether err came from a command whose standard
// error mentions substr, ignoring case
func stderrContains(err error, substr string) bool {
	var ce *commandError
	if !errors.As(err, &ce) {
		return false
	}
	return strings.Contains(strings.ToLower(ce.stderr), strings.ToLower(substr))
}
