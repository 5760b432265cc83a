package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jward/solid"
	"github.com/jward/solid/internal/runtime"
	"github.com/jward/solid/scripts"
	"github.com/spf13/cobra"
)

var (
	flagFormat     string
	flagStrict     bool
	flagScriptsDir string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "solid",
	Short:         "Open/Closed and Single Responsibility samples",
	Long:          "Computes shape areas through a registry of built-in and scripted shape kinds, and round-trips user data through a single-purpose holder.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		errorHandled = false
		return validateFormat(flagFormat)
	},
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "reject negative or NaN dimensions")
	rootCmd.PersistentFlags().StringVar(&flagScriptsDir, "scripts-dir", "", "load shape scripts from disk path instead of embedded")

	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(userDataCmd)
}

// buildRegistry returns a registry with the built-in kinds plus every
// scripted kind from --scripts-dir, or from the embedded scripts.
func buildRegistry(ctx context.Context) (*solid.Registry, error) {
	var rt *runtime.Runtime
	if flagScriptsDir != "" {
		rt = runtime.NewRuntime(flagScriptsDir)
	} else {
		rt = runtime.NewRuntime("", runtime.WithRuntimeFS(scripts.FS))
	}

	kinds, err := rt.LoadKinds(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shape scripts: %w", err)
	}
	return solid.NewRegistry(solid.WithStrict(flagStrict), solid.WithKinds(kinds...))
}
