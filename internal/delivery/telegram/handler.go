package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// Commands lists the bot commands registered with Telegram.
var Commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "홈 화면"},
	{Command: "study", Description: "목록 보기 (예: /study 외래어)"},
	{Command: "practice", Description: "연습하기 (예: /practice 한자어)"},
	{Command: "test", Description: "실전 20문제 테스트"},
	{Command: "home", Description: "종료하고 홈으로"},
	{Command: "help", Description: "도움말"},
}

type Handler struct {
	bot               BotAPI
	logger            *zap.Logger
	sessionService    SessionService
	sessions          SessionStorage
	pointsPerQuestion int
	updateTimeout     int
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	sessionService SessionService,
	sessions SessionStorage,
	pointsPerQuestion int,
	updateTimeout int,
) *Handler {
	return &Handler{
		bot:               bot,
		logger:            logger,
		sessionService:    sessionService,
		sessions:          sessions,
		pointsPerQuestion: pointsPerQuestion,
		updateTimeout:     updateTimeout,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleHome())(ctx, chatID)
		case "study":
			_ = h.withErrorHandling(h.handleModeCommand(entities.ModeStudy, args))(ctx, chatID)
		case "practice":
			_ = h.withErrorHandling(h.handleModeCommand(entities.ModePractice, args))(ctx, chatID)
		case "test":
			_ = h.withErrorHandling(h.handleModeCommand(entities.ModeTest, args))(ctx, chatID)
		case "home":
			_ = h.withErrorHandling(h.handleHome())(ctx, chatID)
		case "help":
			_ = h.send(newPlainMessage(chatID, msgHelp))
		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	_ = h.send(newPlainMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
