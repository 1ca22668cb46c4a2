package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/realmgen/internal/codegen"
	"github.com/roach88/realmgen/internal/manifest"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                      `json:"valid"`
	Errors []codegen.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate a realm manifest without generating output",
		Long: `Validate a realm manifest without generating harness text.

Checks the obligations the generator itself trusts the manifest on:
unique component names, URLs on non-mock components, and route references
resolving to declared components.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, manifestPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		RunID:     NewRunID(),
	}

	formatter.VerboseLog("[%s] loading manifest %s", formatter.RunID, manifestPath)

	realm, err := manifest.Load(manifestPath)
	if err != nil {
		_ = formatter.Error(ErrCodeManifest, err.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeManifest, err.Error()), nil)
	}

	verrs := codegen.ValidateRealm(realm)
	result := &ValidationResult{Valid: len(verrs) == 0, Errors: verrs}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
		if !result.Valid {
			return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(verrs)))
		}
		return nil
	}

	if result.Valid {
		fmt.Fprintf(formatter.Writer, "✓ %s is a valid realm manifest\n", manifestPath)
		return nil
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, verr := range verrs {
		fmt.Fprintf(formatter.Writer, "  %s\n", verr.Error())
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(verrs)))
}
