package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// DefaultTestLength is the number of questions in a test session.
const DefaultTestLength = 20

var ErrNoWords = errors.New("no words available")

type WordRepository interface {
	GetByCategory(ctx context.Context, category entities.Category) ([]entities.WordItem, error)
}

type SessionService struct {
	words      WordRepository
	shuffler   *Shuffler
	testLength int
	logger     *zap.Logger
}

func NewSessionService(words WordRepository, shuffler *Shuffler, testLength int, logger *zap.Logger) *SessionService {
	if testLength <= 0 {
		testLength = DefaultTestLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		words:      words,
		shuffler:   shuffler,
		testLength: testLength,
		logger:     logger,
	}
}

// TestLength returns the maximum number of questions in a test session.
func (s *SessionService) TestLength() int {
	return s.testLength
}

// Start creates a fresh session over the words of category.
//
// Study sessions keep catalog order. Practice sessions shuffle the whole
// subset. Test sessions shuffle and keep at most TestLength words.
func (s *SessionService) Start(ctx context.Context, mode entities.Mode, category entities.Category) (*entities.Session, error) {
	if _, err := entities.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	subset, err := s.words.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("get words for %s: %w", category, err)
	}
	if len(subset) == 0 {
		return nil, ErrNoWords
	}

	var words []entities.WordItem
	switch mode {
	case entities.ModeTest:
		words = ShuffleWithLimit(s.shuffler, subset, s.testLength)
	case entities.ModePractice:
		words = Shuffle(s.shuffler, subset)
	default:
		words = subset
	}

	session := entities.NewSession(mode, category, words)

	s.logger.Debug("session created",
		zap.String("session_id", session.ID),
		zap.String("mode", string(mode)),
		zap.String("category", string(category)),
		zap.Int("words", len(words)),
	)

	return session, nil
}
