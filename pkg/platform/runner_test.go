package platform

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner()

	_, err := r.Run(context.Background(), "omni-no-such-binary-xyz", "list")
	if !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("Run() error = %v, want ErrCommandNotFound", err)
	}

	_, err = r.Run(context.Background(), "/nonexistent/omni/bin")
	if !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("Run() with absolute path error = %v, want ErrCommandNotFound", err)
	}
}

func TestExecRunnerExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	r := NewExecRunner()

	out, err := r.Run(context.Background(), "sh", "-c", "echo partial; echo oops >&2; exit 3")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if exitErr.Stderr != "oops" {
		t.Errorf("Stderr = %q, want %q", exitErr.Stderr, "oops")
	}
	if string(out) != "partial\n" {
		t.Errorf("stdout = %q, want %q", out, "partial\n")
	}
}

func TestExecRunnerSuccess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := NewExecRunner().Run(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(out) != "hello" {
		t.Errorf("stdout = %q, want %q", out, "hello")
	}
}

func TestExitErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"no stderr", &ExitError{Command: "snap list vim", Code: 1}, "snap list vim: exit status 1"},
		{"with stderr", &ExitError{Command: "snap list", Code: 2, Stderr: "boom"}, "snap list: exit status 2: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
