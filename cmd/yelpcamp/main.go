// Command yelpcamp runs the YelpCamp web server and its maintenance tasks.
//
//	yelpcamp serve     start the HTTP server (default)
//	yelpcamp migrate   apply database migrations / ensure indexes
//	yelpcamp seed      insert the demo account and sample campgrounds
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yelpcamp/internal/app"
	"github.com/heartmarshall/yelpcamp/internal/app/seeder"
	"github.com/heartmarshall/yelpcamp/internal/config"
)

var (
	configPath  string
	seedConfig  string
	seedReset   bool
	seedDryRun  bool
	taskTimeout time.Duration

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "yelpcamp",
	Short:         "YelpCamp campground listings server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		logger = app.NewLogger(cfg.Log)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg, logger)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), taskTimeout)
		defer cancel()
		return app.Migrate(ctx, cfg, logger)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo account and sample campgrounds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := seeder.LoadConfig(seedConfig)
		if err != nil {
			return err
		}
		// Flags override config.
		if cmd.Flags().Changed("reset") {
			sc.Reset = seedReset
		}
		if cmd.Flags().Changed("dry-run") {
			sc.DryRun = seedDryRun
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), taskTimeout)
		defer cancel()

		report, err := app.Seed(ctx, cfg, *sc, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d campgrounds and %d comments as %q\n",
			report.Campgrounds, report.Comments, report.User.Username)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")

	migrateCmd.Flags().DurationVar(&taskTimeout, "timeout", 5*time.Minute, "overall timeout")

	seedCmd.Flags().StringVar(&seedConfig, "seeder-config", "", "path to seeder YAML config file")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "remove the demo user's campgrounds first")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "report what would be written without writing")
	seedCmd.Flags().DurationVar(&taskTimeout, "timeout", 5*time.Minute, "overall timeout")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", slog.String("error", err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
