// Package root holds the hqctl command tree
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/HealthQuest_Go/internal/config"
	"github.com/osse101/HealthQuest_Go/internal/handler"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	dir            string
	healthProvider string
	healthFile     string
}

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "hqctl",
		Short:         "HealthQuest storage and game maintenance",
		Long:          "hqctl inspects and maintains a HealthQuest state directory without the HTTP server.",
		Version:       handler.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", envOr(config.EnvStorageDir, config.DefaultStorageDir), "state directory")
	flags.StringVar(&opts.healthProvider, "health-provider", envOr(config.EnvHealthProvider, config.ProviderMock), "health provider (mock or file)")
	flags.StringVar(&opts.healthFile, "health-file", os.Getenv(config.EnvHealthFile), "health file for the file provider")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newUsageCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newRotateCmd(opts),
		newCloseDayCmd(opts),
		newHistoryCmd(opts),
	)
	return rootCmd
}

// Execute runs hqctl and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
