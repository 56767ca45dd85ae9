package cli

import (
	"bytes"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	if rootCmd.Use != "logsift" {
		t.Errorf("Unexpected Use: %s", rootCmd.Use)
	}

	want := []string{"build", "extract", "inspect", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs([]string{"frobnicate"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() succeeded for an unknown command")
	}
}
