package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"benchsift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile-file>",
		Short: "Validate a scan profile file",
		Long: `Validate a benchsift scan profile file without running a scan.

Checks:
  - YAML syntax
  - Markers are non-empty
  - Field index is within the field count

Reports the effective settings, including any defaults for fields the
profile does not set.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	profilePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", profilePath)

	profile, err := config.Load(ctx, profilePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nProfile valid!\n")
	fmt.Fprintf(out, "  Start marker: %q\n", profile.StartMarker)
	fmt.Fprintf(out, "  End marker:   %q\n", profile.EndMarker)
	fmt.Fprintf(out, "  Field count:  %d\n", profile.FieldCount)
	fmt.Fprintf(out, "  Field index:  %d\n", profile.FieldIndex)
	fmt.Fprintf(out, "  Threshold:    %d\n", profile.Threshold)

	return nil
}
