package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)
	notice := ""

	var fn HandlerFunc
	switch data.Action {
	case actionStart:
		fn = h.handleStartCallback(data)
	case actionNext:
		fn, notice = h.handleNextCallback(data, chatID)
	case actionList:
		fn, notice = h.handleListCallback(data, chatID, cb.Message.MessageID)
	case actionHome:
		fn, notice = h.handleHomeCallback(data)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if fn != nil {
		_ = h.withErrorHandling(fn)(ctx, chatID)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, notice)
}

func (h *Handler) handleStartCallback(data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		mode, err := entities.ParseMode(data.param(0))
		if err != nil {
			h.logger.Debug("invalid mode in callback", zap.String("data", data.Raw))
			return nil
		}

		category, ok := decodeCategory(data.param(1))
		if !ok {
			h.logger.Debug("invalid category in callback", zap.String("data", data.Raw))
			return nil
		}

		return h.startSession(ctx, chatID, mode, category)
	}
}

func (h *Handler) handleNextCallback(data callbackData, chatID int64) (HandlerFunc, string) {
	number, ok := data.intParam(0)
	if !ok {
		return nil, ""
	}

	c := h.sessions.Get(chatID)
	if c == nil || !c.Active() {
		return nil, msgExpired
	}
	if s := c.Session(); s.Mode != entities.ModePractice || !s.Feedback.Shown || s.Number() != number {
		return nil, msgExpired
	}

	return func(_ context.Context, chatID int64) error {
		return h.advance(chatID, c)
	}, ""
}

func (h *Handler) handleListCallback(data callbackData, chatID int64, messageID int) (HandlerFunc, string) {
	page, ok := data.intParam(0)
	if !ok || page < 0 {
		return nil, ""
	}

	c := h.sessions.Get(chatID)
	if c == nil || !c.Active() || c.Session().Mode != entities.ModeStudy {
		return nil, msgExpired
	}
	s := c.Session()

	text, totalPages := renderListPage(s, page)
	if text == "" {
		h.logger.Debug("list page out of range",
			zap.Int("page", page),
			zap.Int("total_pages", totalPages),
		)
		return nil, ""
	}

	return func(_ context.Context, chatID int64) error {
		edit := newEdit(chatID, messageID, text)
		kb := buildListKeyboard(page, totalPages)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}, ""
}

func (h *Handler) handleHomeCallback(data callbackData) (HandlerFunc, string) {
	switch data.param(0) {
	case homeMenu:
		return h.handleHome(), ""
	case homeConfirm:
		return func(_ context.Context, chatID int64) error {
			h.discard(chatID)
			return h.sendHome(chatID)
		}, ""
	case homeCancel:
		return nil, msgKeepGoing
	}
	return nil, ""
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
