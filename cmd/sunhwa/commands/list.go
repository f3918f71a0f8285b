package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/delivery/tui"
	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the word list with accepted answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := entities.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("%w: %q", err, category)
			}

			a, err := newApp(zap.NewNop())
			if err != nil {
				return err
			}

			s, err := a.sessions.Start(cmd.Context(), entities.ModeStudy, cat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderList(s))
			return err
		},
	}
}
