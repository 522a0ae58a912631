package cli

import (
	"fmt"
	"mail-train-service/internal/platform/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	logLevel string
	log      *zap.SugaredLogger
}

// NewRootCmd builds the trainsched command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "trainsched",
		Short:         "Schedule mail trains over a rail network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(opts.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			opts.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(opts), newInspectCmd(opts))
	return root
}
