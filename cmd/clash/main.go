// Package main implements clash, the terminal client for the CodeClash
// arena service. Running it bare opens the interactive board; subcommands
// cover one-shot use from scripts and pipelines.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeclash/cmd/clash/board"
	"codeclash/internal/arena"
	"codeclash/internal/config"
	"codeclash/internal/logging"
)

var (
	// Global flags
	flagServer  string
	flagConfig  string
	flagTimeout time.Duration
	flagVerbose bool

	// Board flags
	flagFile  string
	flagWatch bool

	// Board prefill flags
	flagUser string
	flagLang string

	cfg *config.Config
)

// rootCmd launches the interactive board when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "clash",
	Short: "CodeClash - terminal client for the code arena",
	Long: `clash is a terminal client for the CodeClash arena service.

Run without arguments to open the interactive board: a submission form,
the live leaderboard, and panels for analysis and optimization results.
All scoring happens on the arena service; clash is the window into it.

One-shot subcommands (top, submit, optimize, doctor) print to stdout and
exit, for scripts and pipelines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagConfig != "" {
			cfg, err = config.LoadFrom(flagConfig)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if flagServer != "" {
			cfg.Server.BaseURL = flagServer
		}

		if err := logging.Initialize(cfg.LogDir(), flagVerbose || cfg.Log.Debug); err != nil {
			// Logging is diagnostics, not functionality; a read-only
			// filesystem should not keep the client from running.
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		}
		logging.Boot().Info("starting",
			zap.String("command", cmd.Name()),
			zap.String("server", cfg.Server.BaseURL))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	username := flagUser
	if username == "" {
		username = cfg.Defaults.Username
	}

	lang := cfg.Language()
	if flagLang != "" {
		parsed, err := arena.ParseLanguage(flagLang)
		if err != nil {
			return err
		}
		lang = parsed
	}

	return board.Run(board.Options{
		Client:    newClient(),
		Username:  username,
		Language:  lang,
		FilePath:  flagFile,
		WatchFile: flagWatch,
	})
}

// newClient builds the arena client from the resolved configuration. The
// configured timeout applies to every request; zero leaves requests
// unbounded, which is the default the interactive board relies on.
func newClient() *arena.Client {
	return arena.New(cfg.Server.BaseURL,
		arena.WithTimeout(cfg.Server.Timeout()),
		arena.WithLogger(logging.API()))
}

// shotContext bounds a one-shot command with the --timeout flag.
func shotContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), flagTimeout)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Arena service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: XDG lookup)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "Timeout for one-shot commands")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagFile, "file", "", "Preload the code buffer from a file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the code buffer when --file changes on disk")
	rootCmd.Flags().StringVar(&flagUser, "user", "", "Prefill the username field")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "Initial language (python, javascript, java, cpp)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
