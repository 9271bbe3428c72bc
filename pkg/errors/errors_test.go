package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "only one name list can be read from %s", "stdin"),
			want: "INVALID_INPUT: only one name list can be read from stdin",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "could not open %s", "targets.txt"),
			want: "FILE_NOT_FOUND: could not open targets.txt: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	err := Wrap(ErrCodeInvalidConfig, fs.ErrNotExist, "parse config")

	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), fs.ErrNotExist)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the cause")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
	}{
		{"direct", New(ErrCodeInvalidFormat, "yaml"), ErrCodeInvalidFormat},
		{"outermost wins", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "registry"), ErrCodeInvalidConfig},
		{"behind fmt wrap", fmt.Errorf("scan: %w", New(ErrCodeTimeout, "slow")), ErrCodeTimeout},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "could not open universe.txt"), "could not open universe.txt"},
		{"plain", errors.New("connection refused"), "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
