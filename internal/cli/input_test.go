package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
)

func TestReadNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single without newline", "react", []string{"react"}},
		{"unix endings", "react\nvue\n", []string{"react", "vue"}},
		{"windows endings", "react\r\nvue\r\n", []string{"react", "vue"}},
		{"blank line kept", "react\n\nvue\n", []string{"react", "", "vue"}},
		{"whitespace kept", " react\t\n", []string{" react\t"}},
		{"scoped", "@babel/core\n", []string{"@babel/core"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readNames(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readNames() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readNames() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadNames_LineTooLong(t *testing.T) {
	_, err := readNames(strings.NewReader(strings.Repeat("a", maxLineSize+1)))
	if err == nil {
		t.Error("expected error for oversized line")
	}
}

func TestReadNamesFile(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "targets.txt"), "ab\ncd\n")

	got, err := readNamesFile(path, nil)
	if err != nil {
		t.Fatalf("readNamesFile() error: %v", err)
	}
	if diff := cmp.Diff([]string{"ab", "cd"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = readNamesFile(stdinPath, strings.NewReader("Ab\n"))
	if err != nil {
		t.Fatalf("readNamesFile(stdin) error: %v", err)
	}
	if diff := cmp.Diff([]string{"Ab"}, got); diff != "" {
		t.Errorf("stdin mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNamesFile_Missing(t *testing.T) {
	_, err := readNamesFile(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if bserrors.GetCode(err) != bserrors.ErrCodeFileNotFound {
		t.Errorf("error = %v, want %s", err, bserrors.ErrCodeFileNotFound)
	}
}

func TestReadNamesFile_Directory(t *testing.T) {
	_, err := readNamesFile(t.TempDir(), nil)
	if bserrors.GetCode(err) != bserrors.ErrCodeInvalidInput {
		t.Errorf("error = %v, want %s", err, bserrors.ErrCodeInvalidInput)
	}
}
