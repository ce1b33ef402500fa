// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvmcdm/internal/server"
	"github.com/spf13/cobra"
)

func createServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ranking HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := server.Config{
				Addr:      a.cfg.Addr,
				Strict:    a.cfg.Strict,
				RateLimit: a.cfg.RateLimit,
				RateBurst: a.cfg.RateBurst,
			}
			if addr != "" {
				cfg.Addr = addr
			}

			var history server.History
			if !noHistory {
				st, err := a.openStore(ctx)
				if err != nil {
					return err
				}
				defer st.Close()
				history = st
			}

			return server.New(cfg, a.logger, history).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env LVMCDM_ADDR)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "serve without a run history store")

	return cmd
}
