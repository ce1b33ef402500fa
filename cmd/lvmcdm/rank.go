// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvmcdm/export"
	"github.com/katalvlaran/lvmcdm/internal/problem"
	"github.com/katalvlaran/lvmcdm/internal/store"
	"github.com/katalvlaran/lvmcdm/topsis"
	"github.com/spf13/cobra"
)

func createRankCmd(a *app) *cobra.Command {
	var (
		csvPath string
		label   string
		strict  bool
		save    bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "rank <file>",
		Short: "Rank the alternatives of a JSON or CSV problem file",
		Long: `Rank the alternatives of a problem file.

JSON: {"criteria":[{"id","name","weight","cost"}],"alternatives":[{"name","values":{id:value}}]}
CSV:  header "name;<id>:<weight>[:cost|:benefit];..." then one alternative per row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.LoadFile(args[0])
			if err != nil {
				return err
			}
			alts, err := p.ToAlternatives()
			if err != nil {
				return err
			}

			// An explicit --strict, true or false, overrides the environment.
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}
			var opts []topsis.Option
			if strict {
				opts = append(opts, topsis.WithStrict())
			}
			if verbose {
				a.logger.SetLevel(log.DebugLevel)
				opts = append(opts, topsis.WithLogger(a.logger))
			}

			res, err := topsis.Rank(alts, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRanking(res))

			if csvPath != "" {
				if err = export.WriteCSVFile(csvPath, rankedAlternatives(res)); err != nil {
					return err
				}
				a.logger.Info("exported", "path", csvPath, "alternatives", len(res.Ranking))
			}

			if save {
				st, err := a.openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer st.Close()
				run, err := st.SaveRun(cmd.Context(), store.NewRun(label, res))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved run %s\n", run.ID)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&csvPath, "csv", "", "export the ranked alternatives to this CSV file")
	f.StringVar(&label, "label", "", "label stored with --save")
	f.BoolVar(&strict, "strict", false, "fail on all-zero criteria or indistinguishable alternatives")
	f.BoolVar(&save, "save", false, "store the ranking in the run history")
	f.BoolVarP(&verbose, "verbose", "v", false, "log intermediate matrices and ideal points")

	return cmd
}

// rankedAlternatives returns the input alternatives in ranked order.
func rankedAlternatives(res *topsis.Result) []topsis.Alternative {
	out := make([]topsis.Alternative, len(res.Ranking))
	for i, s := range res.Ranking {
		out[i] = s.Alternative
	}

	return out
}
