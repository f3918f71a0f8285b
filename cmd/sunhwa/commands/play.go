package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/config"
	"github.com/aliskhannn/sunhwa-master/internal/delivery/tui"
	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
	"github.com/aliskhannn/sunhwa-master/internal/logger"
	"github.com/aliskhannn/sunhwa-master/internal/service"
)

var logFile string

func playCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive trainer in the terminal",
		Long: "Open the interactive trainer. Without --mode the home screen is shown;\n" +
			"with --mode study|practice|test a session starts right away.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), mode, logFile)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "start directly in study, practice or test mode")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")

	return cmd
}

func runPlay(ctx context.Context, mode, logPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	log := zap.NewNop()
	if logPath != "" {
		log, err = logger.NewFile(cfg, logPath)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}

	a, err := newAppWithConfig(cfg, log)
	if err != nil {
		return err
	}

	m := tui.NewModel(ctx, service.NewController(a.sessions, log), cfg.Session.PointsPerQuestion)

	if mode != "" {
		md, err := entities.ParseMode(mode)
		if err != nil {
			return fmt.Errorf("%w: %q", err, mode)
		}
		cat, err := entities.ParseCategory(category)
		if err != nil {
			return fmt.Errorf("%w: %q", err, category)
		}
		if err := m.StartAt(md, cat); err != nil {
			return err
		}
	}

	return tui.Run(m)
}
