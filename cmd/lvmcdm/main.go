// SPDX-License-Identifier: MIT

// Command lvmcdm ranks decision alternatives with TOPSIS from the command
// line or as an HTTP service, and keeps a history of past rankings.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvmcdm/internal/config"
	"github.com/katalvlaran/lvmcdm/internal/logging"
	"github.com/katalvlaran/lvmcdm/internal/store"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by subcommands once flags are parsed.
type app struct {
	envFile  string
	dbFlag   string
	logLevel string

	cfg    config.Config
	logger *log.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "lvmcdm",
		Short:         "TOPSIS multi-criteria ranking",
		Long:          `Rank alternatives against weighted benefit and cost criteria with TOPSIS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "read settings from this .env file instead of ./.env")
	flags.StringVar(&a.dbFlag, "db", "", "run history: SQLite path or postgres:// DSN (env "+config.KeyDB+")")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env "+config.KeyLogLevel+")")

	rootCmd.AddCommand(createRankCmd(a))
	rootCmd.AddCommand(createServeCmd(a))
	rootCmd.AddCommand(createHistoryCmd(a))
	rootCmd.AddCommand(createVersionCmd())

	return rootCmd
}

// init resolves configuration (flags over environment over .env) and
// builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	var paths []string
	if a.envFile != "" {
		paths = []string{a.envFile}
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return err
	}
	if a.dbFlag != "" {
		cfg.DB = a.dbFlag
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	a.logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	return err
}

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, a.cfg.DB)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("history store open", "backend", st.Backend())

	return st, nil
}

func createVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvmcdm %s\n", version)
		},
	}
}
