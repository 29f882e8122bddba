package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"layout", "grid", "tiered", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestRootCommandUse(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)

	c.SetLogLevel(log.DebugLevel)

	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level = %v, want %v", c.Logger.GetLevel(), log.DebugLevel)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"graph.json", "layout", "graph.layout.json"},
		{"dir/graph.json", "tiered", "dir/graph.tiered.json"},
		{"noext", "grid", "noext.grid.json"},
	}

	for _, tt := range tests {
		if got := defaultOutputPath(tt.input, tt.suffix); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
		}
	}
}
