// Package cli provides the command-line interface for namesmith.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/raphaelgruber/namesmith/internal/app"
	"github.com/raphaelgruber/namesmith/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose  bool
	envFiles []string

	cfg           config.Config
	logger        *slog.Logger
	closeLogger   func() error
	application   *app.App
	commandCancel context.CancelFunc
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "namesmith",
	Short: "Brand name generator",
	Long: `Namesmith turns a keyword or short description into ranked, pronounceable
brand name candidates.

Names come from a local rule-based engine and, when an LLM provider is
configured, from a remote model. Domain availability can be checked for every
suggestion and runs can be logged to SurrealDB.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if len(envFiles) > 0 {
			loaded, err := config.LoadFile(envFiles...)
			if err != nil {
				return fmt.Errorf("load env file: %w", err)
			}
			cfg = loaded
		} else {
			cfg = config.Load()
		}
		// Keep stderr quiet unless asked; results go to stdout.
		level := max(cfg.LogLevel, slog.LevelWarn)
		if verbose {
			level = slog.LevelDebug
		}
		logger, closeLogger = config.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)
		return nil
	},
}

// cleanup cancels in-flight work and releases the database and log file.
// Cobra skips post-run hooks when a command fails, so Execute calls it.
func cleanup(cmd *cobra.Command) {
	if commandCancel != nil {
		commandCancel()
		commandCancel = nil
	}
	if application != nil {
		if err := application.Close(context.Background()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close database: %v\n", err)
		}
		application = nil
	}
	if closeLogger != nil {
		_ = closeLogger()
		closeLogger = nil
	}
}

// getApp wires the services on first use. Commands that never generate
// (roots, check) skip it.
func getApp(ctx context.Context, opts app.Options) (*app.App, error) {
	if application != nil {
		return application, nil
	}
	a, err := app.New(ctx, cfg, logger, opts)
	if err != nil {
		return nil, err
	}
	application = a
	return a, nil
}

// commandContext returns a context canceled when the command finishes.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, commandCancel = context.WithCancel(ctx)
	return ctx
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	defer cleanup(rootCmd)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load instead of .env")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(cachedCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "namesmith %s\n", Version)
	},
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
