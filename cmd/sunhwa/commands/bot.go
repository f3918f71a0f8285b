package commands

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/config"
	"github.com/aliskhannn/sunhwa-master/internal/delivery/telegram"
	"github.com/aliskhannn/sunhwa-master/internal/logger"
	"github.com/aliskhannn/sunhwa-master/internal/storage"
)

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the trainer as a Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			token, err := cfg.Telegram.BotToken()
			if err != nil {
				return fmt.Errorf("TELEGRAM_API_TOKEN: %w", err)
			}

			log, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			a, err := newAppWithConfig(cfg, log)
			if err != nil {
				return err
			}

			bot, err := tgbotapi.NewBotAPI(token)
			if err != nil {
				return fmt.Errorf("connect to telegram: %w", err)
			}
			bot.Debug = cfg.Telegram.Debug

			if _, err = bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
				log.Warn("failed to set bot commands", zap.Error(err))
			}

			log.Info("authorized on account", zap.String("username", bot.Self.UserName))

			handler := telegram.NewHandler(
				bot,
				log,
				a.sessions,
				storage.NewSessionStorage(),
				cfg.Session.PointsPerQuestion,
				cfg.Telegram.UpdateTimeout,
			)

			err = handler.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				log.Info("shutdown signal received")
				return nil
			}
			return err
		},
	}
}
