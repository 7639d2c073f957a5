package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowforge/flowforge"
	"github.com/flowforge/flowforge/internal/logging"
	"github.com/flowforge/flowforge/pkg/registry"
	"github.com/flowforge/flowforge/pkg/templates"
)

var rootCmd = &cobra.Command{
	Use:   "flowforge",
	Short: "FlowForge compiles plain-language descriptions into automation blueprints",
	Long: `FlowForge turns a natural-language description of an automation into a
typed, wired module graph, validates it, and emits a blueprint document
ready for import into the automation platform.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("registry", "", "YAML file with extra module descriptors")
	rootCmd.PersistentFlags().String("templates", "", "Directory with extra template documents")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	switch name {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return logging.New(level)
}

// newGenerator builds a Generator from the persistent flags, extending
// the built-in catalogue and templates when the user points at extras.
func newGenerator(cmd *cobra.Command) (*flowforge.Generator, error) {
	opts := []flowforge.Option{flowforge.WithLogger(newLogger(cmd))}

	if path, _ := cmd.Flags().GetString("registry"); path != "" {
		descriptors, err := registry.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading registry %s: %w", path, err)
		}
		reg, err := registry.Default().Extend(descriptors...)
		if err != nil {
			return nil, fmt.Errorf("extending registry: %w", err)
		}
		opts = append(opts, flowforge.WithRegistry(reg))
	}

	if dir, _ := cmd.Flags().GetString("templates"); dir != "" {
		library, err := templates.NewLibrary(dir)
		if err != nil {
			return nil, fmt.Errorf("loading templates %s: %w", dir, err)
		}
		extra, err := library.List(context.Background())
		if err != nil {
			return nil, fmt.Errorf("listing templates: %w", err)
		}
		opts = append(opts, flowforge.WithTemplates(append(templates.Builtin(), extra...)))
	}

	return flowforge.New(opts...), nil
}
