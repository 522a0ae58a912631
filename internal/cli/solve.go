package cli

import (
	"errors"
	"fmt"
	"mail-train-service/internal/adapters/netfile"
	"mail-train-service/internal/report"
	"mail-train-service/internal/services"

	"github.com/spf13/cobra"
)

func newSolveCmd(opts *options) *cobra.Command {
	var (
		strategy string
		audit    bool
	)

	cmd := &cobra.Command{
		Use:   "solve <network-file>",
		Short: "Print the schedule of every (or one) strategy",
		Long: "Reads a network description (text, or HCL when the file ends in .hcl) and prints\n" +
			"the schedule computed by each strategy. Setup errors fail the command; packages\n" +
			"that cannot be delivered are reported after the partial schedule.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies := services.Strategies
			if strategy != "all" {
				s, err := services.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				strategies = []services.Strategy{s}
			}

			sc, err := netfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			state, err := sc.Build()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var auditErrs []error
			for i, s := range strategies {
				if i > 0 {
					fmt.Fprintln(out)
				}

				sol, err := services.Run(cmd.Context(), sc.Name, state, s)
				var derr *services.DeliveryError
				if err != nil && !errors.As(err, &derr) {
					return err
				}
				if len(sol.Plan.Skipped) > 0 {
					opts.log.Infow("packages already at destination", "packages", sol.Plan.Skipped)
				}
				if err := report.Write(out, sol.Plan); err != nil {
					return err
				}
				if derr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", s, derr)
				}

				if audit {
					if err := services.Audit(sol.Prepared, sol.Moves); err != nil {
						auditErrs = append(auditErrs, fmt.Errorf("audit %s: %w", s, err))
					} else {
						fmt.Fprintln(out, "audit: ok")
					}
				}
			}

			return errors.Join(auditErrs...)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "all", "all, single, pickups or greedy")
	cmd.Flags().BoolVar(&audit, "audit", false, "replay each schedule and check its invariants")
	return cmd
}
