// Package main implements the entry point for the NC News API server.
// It exposes three commands: serve runs the HTTP API, migrate manages the
// database schema and seed loads the sample dataset.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	// SIGINT and SIGTERM cancel the command context, which starts graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The --config flag is shared by all
// subcommands and points at an optional YAML file.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "ncnews",
		Short:         "NC News REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config.yaml file")

	root.AddCommand(
		newServeCmd(&configFile),
		newMigrateCmd(&configFile),
		newSeedCmd(&configFile),
	)
	return root
}

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|reset|status|version]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrationCommands(),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return runMigrate(cmd.Context(), *configFile, command)
		},
	}
}

func newSeedCmd(configFile *string) *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with the sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configFile, dataFile)
		},
	}
	cmd.Flags().StringVar(&dataFile, "data", "", "YAML dataset to load instead of the built-in one")
	return cmd
}
