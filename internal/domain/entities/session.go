package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownMode = errors.New("unknown mode")

// Mode selects how a session presents its words.
type Mode string

const (
	ModeStudy    Mode = "study"    // list of all words with answers
	ModePractice Mode = "practice" // one word at a time with feedback
	ModeTest     Mode = "test"     // timed-style exam, score at the end
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStudy, ModePractice, ModeTest:
		return m, nil
	}
	return "", ErrUnknownMode
}

// Feedback is the result of the last practice submission.
type Feedback struct {
	Shown   bool
	Correct bool
}

// Session is the mutable state of one study, practice or test run.
type Session struct {
	ID        string
	Mode      Mode
	Category  Category
	Words     []WordItem
	Index     int // position of the current word, always within [0, len(Words))
	Score     int // number of correct submissions
	Finished  bool
	Input     string
	Feedback  Feedback
	StartedAt time.Time
}

// NewSession creates a session positioned on the first of words.
func NewSession(mode Mode, category Category, words []WordItem) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Category:  category,
		Words:     words,
		StartedAt: time.Now(),
	}
}

// Len returns the number of words in the session.
func (s *Session) Len() int {
	return len(s.Words)
}

// Current returns the word at the current position.
func (s *Session) Current() WordItem {
	return s.Words[s.Index]
}

// Number returns the 1-based position of the current word.
func (s *Session) Number() int {
	return s.Index + 1
}

// IsLast reports whether the current word is the last one.
func (s *Session) IsLast() bool {
	return s.Index+1 >= len(s.Words)
}

// SetInput replaces the pending answer text. It is ignored while practice
// feedback is shown, because the input is read-only then.
func (s *Session) SetInput(text string) {
	if s.Feedback.Shown {
		return
	}
	s.Input = text
}

// Submit checks text against the current word's accepted answers.
//
// In practice mode the feedback is revealed and the position is kept.
// In test mode the session moves on immediately and no feedback is kept.
// ok is false when the submission was ignored: blank text, study mode,
// feedback already shown, or a finished session.
func (s *Session) Submit(text string) (correct, ok bool) {
	if s.Finished || s.Mode == ModeStudy || s.Feedback.Shown {
		return false, false
	}
	if NormalizeAnswer(text) == "" {
		return false, false
	}

	s.Input = text
	correct = CheckAnswer(text, s.Current().Purified)
	if correct {
		s.Score++
	}

	switch s.Mode {
	case ModePractice:
		s.Feedback = Feedback{Shown: true, Correct: correct}
	case ModeTest:
		s.Advance()
	}

	return correct, true
}

// Advance moves to the next word, or marks the session finished when the
// current word is the last one. The index never moves past the last word.
func (s *Session) Advance() {
	if s.Finished {
		return
	}
	if s.IsLast() {
		s.Finished = true
		return
	}
	s.Index++
	s.Input = ""
	s.Feedback = Feedback{}
}

// Points returns the final score for a test with the given value per answer.
func (s *Session) Points(perQuestion int) int {
	return s.Score * perQuestion
}
