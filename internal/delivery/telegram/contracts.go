package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
	"github.com/aliskhannn/sunhwa-master/internal/service"
)

// BotAPI is the subset of *tgbotapi.BotAPI used by the handler.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type SessionService interface {
	Start(ctx context.Context, mode entities.Mode, category entities.Category) (*entities.Session, error)
}

// SessionStorage holds one controller per chat.
type SessionStorage interface {
	Store(chatID int64, c *service.Controller)
	Get(chatID int64) *service.Controller
	Delete(chatID int64)
}
