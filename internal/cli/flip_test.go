package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/bitsquat/pkg/bitflip"
)

func TestFlipPosition(t *testing.T) {
	tests := []struct {
		index int
		bit   uint
		want  string
	}{
		{0, 0, "[byte 0, mask 0x01]"},
		{0, 5, "[byte 0, mask 0x20]"},
		{12, 7, "[byte 12, mask 0x80]"},
	}
	for _, tt := range tests {
		if got := flipPosition(tt.index, tt.bit); got != tt.want {
			t.Errorf("flipPosition(%d, %d) = %q, want %q", tt.index, tt.bit, got, tt.want)
		}
	}
}

func TestWriteCandidates(t *testing.T) {
	var buf bytes.Buffer
	writeCandidates(&buf, bitflip.Candidates("ab"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("got %d lines, want 14:\n%s", len(lines), buf.String())
	}
	if want := "[byte 0, mask 0x20]  Ab"; lines[5] != want {
		t.Errorf("lines[5] = %q, want %q", lines[5], want)
	}
}

func TestFlipCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{"lists flips", []string{"flip", "npm"}, false, "[byte 0, mask 0x01]  opm"},
		{"empty name", []string{"flip", ""}, true, ""},
		{"missing arg", []string{"flip"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			root := New(&errOut, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetOut(&out)
			root.SetErr(&errOut)

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
