package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "root takes no args", args: []string{"extra"}, wantErr: "unknown command"},
		{name: "show needs a technique", args: []string{"show"}, wantErr: "accepts 1 arg"},
		{name: "show unknown technique", args: []string{"show", "square"}, wantErr: "unknown technique"},
		{name: "config init needs a path", args: []string{"config", "init"}, wantErr: "accepts 1 arg"},
		{name: "run unknown technique", args: []string{"run", "--technique", "9"}, wantErr: "unknown technique"},
		{name: "run bad log level", args: []string{"run", "-t", "1", "--log-level", "loud"}, wantErr: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRootClosedInput(t *testing.T) {
	out, err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "Failed to read technique selection") {
		t.Fatalf("error = %v", err)
	}
	if !strings.HasSuffix(out, "Select a technique (1-3): ") {
		t.Errorf("output = %q, want menu ending in prompt", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "breathe version dev") {
		t.Errorf("output = %q", out)
	}
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Box Breathing", "Diaphragmatic Breathing", "Alternate Nostril Breathing"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestShowCmd(t *testing.T) {
	out, err := execute(t, "show", "box")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Box Breathing (box)") || !strings.Contains(out, "Cycle: 16s") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigInitAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breathe.toml")

	out, err := execute(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Config written") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := execute(t, "config", "init", path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v", err)
	}
	if _, err := execute(t, "config", "init", "--force", path); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, err = execute(t, "config", "check", path)
	if err != nil {
		t.Fatalf("config check: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("output = %q", out)
	}
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"run", "tui", "list", "show", "config", "version"} {
		if !strings.Contains(out, name) {
			t.Errorf("help missing %q", name)
		}
	}
}
