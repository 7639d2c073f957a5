package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Run: func(cmd *cobra.Command, args []string) {
		gen, err := newGenerator(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Templates failed: %v\n", err)
			os.Exit(1)
		}
		for _, tpl := range gen.Templates() {
			fmt.Printf("%s\n  %s\n", tpl.Name, tpl.Description)
			if len(tpl.Keywords) > 0 {
				fmt.Printf("  keywords: %s\n", strings.Join(tpl.Keywords, ", "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
