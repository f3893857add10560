package cli

import "testing"

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	if rootCmd.Use != "benchsift" {
		t.Errorf("Unexpected Use: %s", rootCmd.Use)
	}

	want := []string{"locate", "strip", "validate", "version"}
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

func TestRootCommand_SilencesUsage(t *testing.T) {
	rootCmd := NewRootCommand()

	if !rootCmd.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}
	if !rootCmd.SilenceErrors {
		t.Error("SilenceErrors should be set")
	}
}
