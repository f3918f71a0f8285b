package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	category   string
)

// Execute runs the command tree. Errors are returned to the caller, which is
// the only place they are printed.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sunhwa",
		Short:         "순화어 마스터: Korean purification term trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), "", "")
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config/config.yaml)")
	root.PersistentFlags().StringVarP(&category, "category", "c", "", "category filter: 한자어, 외래어, 최신 순화어 (default all)")

	root.AddCommand(playCmd(), listCmd(), botCmd())

	return root
}
