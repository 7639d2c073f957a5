package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowforge/flowforge/internal/presentation/graph"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/emit"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <blueprint.json>",
	Short: "Export the flow graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of a blueprint's module flow.
Pass a blueprint file, or use --description to generate one first.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, err := graphScenario(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Graph failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(scenario))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("description", "d", "", "Generate the graph from a description instead of a file")
}

func graphScenario(cmd *cobra.Command, args []string) (*domain.Scenario, error) {
	if description, _ := cmd.Flags().GetString("description"); description != "" {
		gen, err := newGenerator(cmd)
		if err != nil {
			return nil, err
		}
		result, err := gen.Generate(description)
		if err != nil {
			return nil, err
		}
		return result.Scenario, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("pass a blueprint file or --description")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	blueprint, err := emit.Parse(data)
	if err != nil {
		return nil, err
	}
	return blueprint.Scenario(), nil
}
