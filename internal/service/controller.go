package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// SessionStarter creates sessions for a Controller. *SessionService implements it.
type SessionStarter interface {
	Start(ctx context.Context, mode entities.Mode, category entities.Category) (*entities.Session, error)
}

// Controller owns the single active session of one front-end or chat.
// A nil session means the home screen is shown.
type Controller struct {
	sessions SessionStarter
	logger   *zap.Logger
	session  *entities.Session
}

func NewController(sessions SessionStarter, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		sessions: sessions,
		logger:   logger,
	}
}

// Session returns the active session, or nil on the home screen.
func (c *Controller) Session() *entities.Session {
	return c.session
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.session != nil
}

// Start discards the current session, if any, and begins a new one.
func (c *Controller) Start(ctx context.Context, mode entities.Mode, category entities.Category) error {
	s, err := c.sessions.Start(ctx, mode, category)
	if err != nil {
		return err
	}
	c.session = s

	c.logger.Info("session started",
		zap.String("session_id", s.ID),
		zap.String("mode", string(mode)),
		zap.String("category", string(category)),
		zap.Int("words", s.Len()),
	)
	return nil
}

// SetInput updates the pending answer of the active session.
func (c *Controller) SetInput(text string) {
	if c.session == nil {
		return
	}
	c.session.SetInput(text)
}

// Submit checks text against the current word. See entities.Session.Submit.
func (c *Controller) Submit(text string) (correct, ok bool) {
	if c.session == nil {
		return false, false
	}

	correct, ok = c.session.Submit(text)
	if !ok {
		return false, false
	}

	c.logger.Debug("answer submitted",
		zap.String("session_id", c.session.ID),
		zap.Bool("correct", correct),
		zap.Int("score", c.session.Score),
		zap.Bool("finished", c.session.Finished),
	)

	if c.session.Finished {
		c.logFinished()
	}

	return correct, true
}

// Advance moves the active session to its next word.
func (c *Controller) Advance() {
	if c.session == nil {
		return
	}

	wasFinished := c.session.Finished
	c.session.Advance()
	if c.session.Finished && !wasFinished {
		c.logFinished()
	}
}

// NeedsConfirmation reports whether leaving now would discard progress.
// Study sessions can always be left without asking.
func (c *Controller) NeedsConfirmation() bool {
	return c.session != nil && c.session.Mode != entities.ModeStudy
}

// Reset returns to the home screen and discards the session.
func (c *Controller) Reset() {
	if c.session != nil {
		c.logger.Debug("session discarded", zap.String("session_id", c.session.ID))
	}
	c.session = nil
}

func (c *Controller) logFinished() {
	c.logger.Info("session finished",
		zap.String("session_id", c.session.ID),
		zap.String("mode", string(c.session.Mode)),
		zap.Int("score", c.session.Score),
		zap.Int("total", c.session.Len()),
	)
}
