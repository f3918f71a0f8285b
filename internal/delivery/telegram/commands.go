package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
	"github.com/aliskhannn/sunhwa-master/internal/service"
)

// handleHome returns to the home screen, asking first when progress would be lost.
func (h *Handler) handleHome() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if c := h.sessions.Get(chatID); c != nil && c.NeedsConfirmation() {
			return h.sendConfirmHome(chatID)
		}

		h.discard(chatID)
		return h.sendHome(chatID)
	}
}

// handleModeCommand starts a session from a /study, /practice or /test command.
func (h *Handler) handleModeCommand(mode entities.Mode, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		category, err := entities.ParseCategory(strings.TrimSpace(args))
		if err != nil {
			return h.send(newPlainMessage(chatID, msgUnknownCategory))
		}

		return h.startSession(ctx, chatID, mode, category)
	}
}

// handleAnswer treats free text as a submission for the chat's session.
func (h *Handler) handleAnswer(text string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		c := h.sessions.Get(chatID)
		if c == nil || !c.Active() {
			msg := newPlainMessage(chatID, msgNoSession)
			msg.ReplyMarkup = buildHomeKeyboard()
			return h.send(msg)
		}

		s := c.Session()
		switch s.Mode {
		case entities.ModeStudy:
			return h.send(newPlainMessage(chatID, msgStudyHint))

		case entities.ModePractice:
			// A second message after feedback moves on, like pressing Enter twice.
			if s.Feedback.Shown {
				return h.advance(chatID, c)
			}

			if _, ok := c.Submit(text); !ok {
				return nil
			}

			msg := newMessage(chatID, renderFeedback(s))
			msg.ReplyMarkup = buildNextKeyboard(s.Number())
			return h.send(msg)

		case entities.ModeTest:
			if _, ok := c.Submit(text); !ok {
				return nil
			}

			if s.Finished {
				return h.finish(chatID, c)
			}
			return h.sendQuestion(chatID, s)
		}

		return nil
	}
}

func (h *Handler) startSession(ctx context.Context, chatID int64, mode entities.Mode, category entities.Category) error {
	c := h.sessions.Get(chatID)
	if c != nil && c.NeedsConfirmation() {
		return h.sendConfirmHome(chatID)
	}
	if c == nil {
		c = service.NewController(h.sessionService, h.logger.With(zap.Int64("chat_id", chatID)))
	}

	if err := c.Start(ctx, mode, category); err != nil {
		if errors.Is(err, service.ErrNoWords) {
			return h.send(newPlainMessage(chatID, msgNoWords))
		}
		return err
	}
	h.sessions.Store(chatID, c)

	s := c.Session()
	if mode == entities.ModeStudy {
		return h.sendListPage(chatID, s, 0)
	}
	return h.sendQuestion(chatID, s)
}

// advance moves past practice feedback and shows the next word or the summary.
func (h *Handler) advance(chatID int64, c *service.Controller) error {
	c.Advance()

	s := c.Session()
	if s.Finished {
		return h.finish(chatID, c)
	}
	return h.sendQuestion(chatID, s)
}

// finish shows the summary and discards the session.
func (h *Handler) finish(chatID int64, c *service.Controller) error {
	s := c.Session()

	text := renderPracticeSummary(s)
	if s.Mode == entities.ModeTest {
		text = renderTestSummary(s, h.pointsPerQuestion)
	}

	h.discard(chatID)

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = buildResultKeyboard()
	return h.send(msg)
}

// discard resets and forgets the chat's controller.
func (h *Handler) discard(chatID int64) {
	if c := h.sessions.Get(chatID); c != nil {
		c.Reset()
	}
	h.sessions.Delete(chatID)
}

func (h *Handler) sendHome(chatID int64) error {
	msg := newMessage(chatID, welcomeMarkdownV2())
	msg.ReplyMarkup = buildHomeKeyboard()
	return h.send(msg)
}

func (h *Handler) sendConfirmHome(chatID int64) error {
	msg := newPlainMessage(chatID, msgConfirmHome)
	msg.ReplyMarkup = buildConfirmHomeKeyboard()
	return h.send(msg)
}

func (h *Handler) sendQuestion(chatID int64, s *entities.Session) error {
	return h.send(newMessage(chatID, renderQuestion(s)))
}

func (h *Handler) sendListPage(chatID int64, s *entities.Session, page int) error {
	text, totalPages := renderListPage(s, page)
	if text == "" {
		return h.send(newPlainMessage(chatID, msgNoWords))
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = buildListKeyboard(page, totalPages)
	return h.send(msg)
}
