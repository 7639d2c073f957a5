package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flowforge/flowforge"
	"github.com/flowforge/flowforge/internal/adapters/file"
	"github.com/flowforge/flowforge/internal/presentation/tui"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Compile a description into a blueprint",
	Long: `Compiles a natural-language automation description into a blueprint
document and prints the validation report. The description is taken
from the arguments, or from stdin when none are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Generate failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("template", "t", "", "Build from a named template instead of a description")
	generateCmd.Flags().StringP("output", "o", "", "Write the blueprint and report into this directory")
	generateCmd.Flags().Bool("json", false, "Print the blueprint and findings as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	var result *flowforge.Result
	if name, _ := cmd.Flags().GetString("template"); name != "" {
		result, err = gen.FromTemplate(name)
	} else {
		description, derr := readDescription(args)
		if derr != nil {
			return derr
		}
		result, err = gen.Generate(description)
	}
	if err != nil {
		return err
	}

	doc, err := result.Blueprint.Marshal()
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(result, doc)
	}

	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		markdown := report.RenderMarkdown(result.Scenario, result.Diagnostics)
		blueprintPath, reportPath, err := file.Export(dir, result.Blueprint.Name, doc, markdown)
		if err != nil {
			return err
		}
		fmt.Printf("Blueprint written to %s\n", blueprintPath)
		fmt.Printf("Report written to %s\n", reportPath)
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner()
		render := tui.NewRenderer()
		pretty, err := render(report.RenderMarkdown(result.Scenario, result.Diagnostics))
		if err != nil {
			return err
		}
		fmt.Print(pretty)
	} else {
		fmt.Println(string(doc))
		fmt.Println(report.RenderText(result.Diagnostics))
	}

	if domain.HasErrors(result.Diagnostics) {
		os.Exit(1)
	}
	return nil
}

func readDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading description from stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(result *flowforge.Result, doc []byte) error {
	results := result.Diagnostics
	if results == nil {
		results = []domain.Diagnostic{}
	}
	out := map[string]any{
		"blueprint": json.RawMessage(doc),
		"summary":   report.Summarize(result.Diagnostics),
		"results":   results,
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
