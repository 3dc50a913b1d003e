package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      stderrors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "domain error",
			err:      ErrNotEnoughMedals,
			expected: "Error: not enough medals",
		},
		{
			name:     "wrapped domain error",
			err:      fmt.Errorf("%w: rule r1", ErrDuplicateID),
			expected: "Error: duplicate id: rule r1",
		},
		{
			name:     "context around domain error",
			err:      fmt.Errorf("redeem for Ann: %w", ErrItemOutOfStock),
			expected: "Error: redeem for Ann: " + ErrItemOutOfStock.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "roster")
	if got != "Error: failed to load roster" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestDomainErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"student not found", ErrStudentNotFound, ErrNotFound},
		{"item not found", ErrItemNotFound, ErrNotFound},
		{"rule not found", ErrRuleNotFound, ErrNotFound},
		{"out of stock", ErrItemOutOfStock, ErrOutOfStock},
		{"not enough medals", ErrNotEnoughMedals, ErrInsufficientBalance},
		{"already adopted", ErrPetAlreadyAdopted, ErrAlreadyExists},
		{"not activated", ErrSystemNotActivated, ErrNotActivated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("award: %w", tt.err)
			if !Is(wrapped, tt.kind) {
				t.Errorf("Is(%v, %v) = false, want true", wrapped, tt.kind)
			}
			if !Is(wrapped, tt.err) {
				t.Errorf("Is(%v, sentinel) = false, want true", wrapped)
			}
		})
	}
}

func TestDomainErrorsDoNotCrossMatch(t *testing.T) {
	if Is(ErrStudentNotFound, ErrItemNotFound) {
		t.Error("student and item not-found errors should be distinct")
	}
	if Is(ErrItemOutOfStock, ErrInsufficientBalance) {
		t.Error("out of stock should not match insufficient balance")
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(stderrors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
