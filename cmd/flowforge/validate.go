package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/emit"
	"github.com/flowforge/flowforge/pkg/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <blueprint.json>",
	Short: "Check a blueprint for problems",
	Long: `Validates an existing blueprint document against the module catalogue
and reports every finding by severity. Exits non-zero when errors are
found.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Print the findings as JSON")
}

func runValidate(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := emit.ValidateDocument(data); err != nil {
		return fmt.Errorf("malformed blueprint: %w", err)
	}
	blueprint, err := emit.Parse(data)
	if err != nil {
		return err
	}

	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	diagnostics := gen.Validate(blueprint.Scenario())

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		out, err := report.RenderJSON(diagnostics)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Println(report.RenderText(diagnostics))
	}

	if domain.HasErrors(diagnostics) {
		os.Exit(1)
	}
	return nil
}
