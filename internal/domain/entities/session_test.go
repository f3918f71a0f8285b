package entities

import "testing"

var screenDoor = WordItem{ID: "1", Original: "스크린도어", Purified: []string{"안전문"}, Category: CategoryLoanword}

func testWords() []WordItem {
	return []WordItem{
		screenDoor,
		{ID: "2", Original: "네티즌", Purified: []string{"누리꾼"}, Category: CategoryLoanword},
		{ID: "3", Original: "익일", Purified: []string{"다음 날", "이튿날"}, Category: CategorySinoKorean},
	}
}

func TestSessionSubmit_PracticeShowsFeedbackWithoutAdvancing(t *testing.T) {
	s := NewSession(ModePractice, CategoryLoanword, []WordItem{screenDoor})

	correct, ok := s.Submit("안전문")
	if !ok || !correct {
		t.Fatalf("Submit() = (%v, %v), want (true, true)", correct, ok)
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, want 1", s.Score)
	}
	if !s.Feedback.Shown || !s.Feedback.Correct {
		t.Errorf("Feedback = %+v, want shown and correct", s.Feedback)
	}
	if s.Index != 0 || s.Finished {
		t.Errorf("Index = %d, Finished = %v; want 0, false", s.Index, s.Finished)
	}
}

func TestSessionSubmit_PracticeIncorrect(t *testing.T) {
	s := NewSession(ModePractice, CategoryAll, testWords())

	correct, ok := s.Submit("틀린 답")
	if !ok || correct {
		t.Fatalf("Submit() = (%v, %v), want (false, true)", correct, ok)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if !s.Feedback.Shown || s.Feedback.Correct {
		t.Errorf("Feedback = %+v, want shown and incorrect", s.Feedback)
	}
}

func TestSessionSubmit_PracticeIgnoredWhileFeedbackShown(t *testing.T) {
	s := NewSession(ModePractice, CategoryAll, testWords())
	s.Submit("안전문")

	if _, ok := s.Submit("안전문"); ok {
		t.Fatal("second Submit() accepted while feedback is shown")
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, want 1", s.Score)
	}

	s.SetInput("changed")
	if s.Input != "안전문" {
		t.Errorf("Input = %q, want it unchanged while feedback is shown", s.Input)
	}
}

func TestSessionSubmit_TestAdvancesWithoutFeedback(t *testing.T) {
	s := NewSession(ModeTest, CategoryAll, testWords())

	correct, ok := s.Submit("안전 문")
	if !ok || !correct {
		t.Fatalf("Submit() = (%v, %v), want (true, true)", correct, ok)
	}
	if s.Index != 1 {
		t.Errorf("Index = %d, want 1", s.Index)
	}
	if s.Feedback.Shown {
		t.Error("Feedback shown in test mode")
	}
	if s.Input != "" {
		t.Errorf("Input = %q, want cleared", s.Input)
	}
	if s.Score != 1 {
		t.Errorf("Score = %d, want 1", s.Score)
	}
}

func TestSessionSubmit_Ignored(t *testing.T) {
	tests := []struct {
		name    string
		session func() *Session
		text    string
	}{
		{
			name:    "blank text",
			session: func() *Session { return NewSession(ModePractice, CategoryAll, testWords()) },
			text:    "   ",
		},
		{
			name:    "study mode",
			session: func() *Session { return NewSession(ModeStudy, CategoryAll, testWords()) },
			text:    "안전문",
		},
		{
			name: "finished session",
			session: func() *Session {
				s := NewSession(ModeTest, CategoryAll, []WordItem{screenDoor})
				s.Submit("안전문")
				return s
			},
			text: "안전문",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.session()
			score, index := s.Score, s.Index

			if _, ok := s.Submit(tt.text); ok {
				t.Fatal("Submit() accepted, want ignored")
			}
			if s.Score != score || s.Index != index {
				t.Errorf("state changed: score %d→%d, index %d→%d", score, s.Score, index, s.Index)
			}
		})
	}
}

func TestSessionAdvance_LastWordFinishes(t *testing.T) {
	s := NewSession(ModePractice, CategoryLoanword, []WordItem{screenDoor})
	s.Submit("안전문")

	s.Advance()

	if !s.Finished {
		t.Fatal("Finished = false, want true")
	}
	if s.Index != 0 {
		t.Errorf("Index = %d, want 0", s.Index)
	}

	s.Advance()
	if s.Index != 0 {
		t.Errorf("Index = %d after advancing a finished session, want 0", s.Index)
	}
}

func TestSessionAdvance_ResetsInputAndFeedback(t *testing.T) {
	s := NewSession(ModePractice, CategoryAll, testWords())
	s.SetInput("안전문")
	s.Submit("안전문")

	s.Advance()

	if s.Index != 1 {
		t.Errorf("Index = %d, want 1", s.Index)
	}
	if s.Input != "" {
		t.Errorf("Input = %q, want empty", s.Input)
	}
	if s.Feedback.Shown {
		t.Error("Feedback still shown after advance")
	}
}

func TestSession_ScoreNeverExceedsProcessed(t *testing.T) {
	for _, mode := range []Mode{ModePractice, ModeTest} {
		t.Run(string(mode), func(t *testing.T) {
			words := testWords()
			s := NewSession(mode, CategoryAll, words)

			for !s.Finished {
				s.Submit(s.Current().Purified[0])
				if s.Score > s.Index+1 {
					t.Fatalf("Score = %d exceeds Index+1 = %d", s.Score, s.Index+1)
				}
				if mode == ModePractice {
					s.Advance()
				}
			}

			if s.Score != len(words) {
				t.Errorf("Score = %d, want %d", s.Score, len(words))
			}
			if s.Index != len(words)-1 {
				t.Errorf("Index = %d, want %d", s.Index, len(words)-1)
			}
		})
	}
}

func TestSessionPoints(t *testing.T) {
	s := NewSession(ModeTest, CategoryAll, testWords())
	s.Submit("안전문")
	s.Submit("누리꾼")
	s.Submit("모레")

	if got := s.Points(5); got != 10 {
		t.Errorf("Points(5) = %d, want 10", got)
	}
	if !s.Finished {
		t.Error("Finished = false, want true")
	}
}

func TestParseModeAndCategory(t *testing.T) {
	if _, err := ParseMode("exam"); err != ErrUnknownMode {
		t.Errorf("ParseMode(exam) err = %v, want ErrUnknownMode", err)
	}
	if m, err := ParseMode("test"); err != nil || m != ModeTest {
		t.Errorf("ParseMode(test) = %q, %v", m, err)
	}

	if c, err := ParseCategory(""); err != nil || c != CategoryAll {
		t.Errorf("ParseCategory(\"\") = %q, %v; want all", c, err)
	}
	if c, err := ParseCategory("외래어"); err != nil || c != CategoryLoanword {
		t.Errorf("ParseCategory(외래어) = %q, %v", c, err)
	}
	if _, err := ParseCategory("고유어"); err != ErrUnknownCategory {
		t.Errorf("ParseCategory(고유어) err = %v, want ErrUnknownCategory", err)
	}
}
