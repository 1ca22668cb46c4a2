package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/realmgen/internal/codegen"
	"github.com/roach88/realmgen/internal/manifest"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output string // output file path; stdout when empty
	Strict bool   // validate cross-references before generating
}

// GenerateResult summarizes one generation pass for JSON output.
type GenerateResult struct {
	ComponentUnderTest string `json:"component_under_test"`
	Components         int    `json:"components"`
	Routes             int    `json:"routes"`
	Tests              int    `json:"tests"`
	Output             string `json:"output,omitempty"`
	Bytes              int    `json:"bytes"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <manifest>",
		Short: "Generate a test harness from a realm manifest",
		Long: `Generate integration-test harness source from a realm manifest.

The manifest (CUE or YAML) describes the component under test, its
dependencies and mocks, and the capability routes between them. The
generated harness constructs that realm at test run-time and contains
one test case per requested protocol.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "check cross-references before generating")

	return cmd
}

func runGenerate(opts *GenerateOptions, manifestPath string, cmd *cobra.Command) error {
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
		return outputGenerateError(formatter, ErrCodeManifest, err.Error(), nil)
	}

	if opts.Strict {
		if verrs := codegen.ValidateRealm(realm); len(verrs) > 0 {
			_ = formatter.Error(ErrCodeValidation,
				fmt.Sprintf("realm validation failed with %d error(s)", len(verrs)), verrs)
			for _, verr := range verrs {
				formatter.VerboseLog("  %s", verr.Error())
			}
			return NewExitError(ExitFailure, "realm validation failed")
		}
	}

	formatter.VerboseLog("[%s] generating harness for %q", formatter.RunID, realm.ComponentUnderTest)

	code, err := codegen.Generate(realm)
	if err != nil {
		return outputGenerateError(formatter, ErrCodeTopology, err.Error(), nil)
	}

	// Buffer the whole file before touching the sink: a failed generation
	// pass must not leave partial output behind.
	var buf bytes.Buffer
	gen := codegen.Generator{Code: code}
	if err := gen.WriteFile(&buf); err != nil {
		return outputGenerateError(formatter, ErrCodeGeneric, err.Error(), nil)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
			return outputGenerateError(formatter, ErrCodeWriteFailed,
				fmt.Sprintf("writing output file: %v", err), nil)
		}
	}

	result := &GenerateResult{
		ComponentUnderTest: realm.ComponentUnderTest,
		Components:         len(realm.Components),
		Routes:             len(realm.Protocols) + len(realm.Directories) + len(realm.Storage),
		Tests:              len(realm.Tests),
		Output:             opts.Output,
		Bytes:              buf.Len(),
	}
	return outputGenerateSuccess(formatter, result, buf.Bytes())
}

// outputGenerateSuccess reports the pass; without --output the harness
// text itself goes to stdout.
func outputGenerateSuccess(formatter *OutputFormatter, result *GenerateResult, harness []byte) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if result.Output == "" {
		_, err := formatter.Writer.Write(harness)
		return err
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated harness for %s: %d component(s), %d route(s), %d test(s)\n",
		result.ComponentUnderTest, result.Components, result.Routes, result.Tests)
	fmt.Fprintf(formatter.Writer, "Wrote %d bytes to %s\n", result.Bytes, result.Output)
	return nil
}

func outputGenerateError(formatter *OutputFormatter, code, message string, details interface{}) error {
	_ = formatter.Error(code, message, details)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), nil)
}
