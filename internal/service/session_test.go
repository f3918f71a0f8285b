package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// minimal in-memory repository for testing session selection
type mockWordRepo struct {
	words []entities.WordItem
	err   error
}

func (m *mockWordRepo) GetByCategory(_ context.Context, category entities.Category) ([]entities.WordItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entities.WordItem
	for _, w := range m.words {
		if w.Matches(category) {
			out = append(out, w)
		}
	}
	return out, nil
}

// catalog builds n words per stored category, except the loanword category
// which gets loanwords words.
func catalog(n, loanwords int) []entities.WordItem {
	var words []entities.WordItem
	add := func(c entities.Category, count int) {
		for i := 0; i < count; i++ {
			id := fmt.Sprintf("%s-%d", c, i)
			words = append(words, entities.WordItem{ID: id, Original: id, Purified: []string{"답" + id}, Category: c})
		}
	}
	add(entities.CategorySinoKorean, n)
	add(entities.CategoryLoanword, loanwords)
	add(entities.CategoryRecent, n)
	return words
}

func newTestSessionService(words []entities.WordItem) *SessionService {
	return NewSessionService(&mockWordRepo{words: words}, NewShufflerWithSource(rand.NewSource(3)), 0, nil)
}

func ids(words []entities.WordItem) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestStart_FiltersByCategory(t *testing.T) {
	svc := newTestSessionService(catalog(10, 10))

	for _, mode := range []entities.Mode{entities.ModeStudy, entities.ModePractice, entities.ModeTest} {
		for _, c := range entities.Categories {
			t.Run(string(mode)+"/"+string(c), func(t *testing.T) {
				s, err := svc.Start(context.Background(), mode, c)
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				for _, w := range s.Words {
					if w.Category != c {
						t.Fatalf("word %s has category %s, want %s", w.ID, w.Category, c)
					}
				}
			})
		}
	}
}

func TestStart_TestLength(t *testing.T) {
	tests := []struct {
		name     string
		category entities.Category
		want     int
	}{
		{name: "all words truncated to 20", category: entities.CategoryAll, want: 20},
		{name: "large category truncated to 20", category: entities.CategorySinoKorean, want: 20},
		{name: "small category keeps 5", category: entities.CategoryLoanword, want: 5},
	}

	svc := newTestSessionService(catalog(30, 5))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := svc.Start(context.Background(), entities.ModeTest, tt.category)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if s.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.want)
			}
		})
	}
}

func TestStart_CustomTestLength(t *testing.T) {
	svc := NewSessionService(&mockWordRepo{words: catalog(10, 10)}, NewShuffler(), 7, nil)

	s, err := svc.Start(context.Background(), entities.ModeTest, entities.CategoryAll)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Len() != 7 {
		t.Errorf("Len() = %d, want 7", s.Len())
	}
}

func TestStart_StudyKeepsOrderPracticeKeepsAll(t *testing.T) {
	words := catalog(10, 10)
	svc := newTestSessionService(words)

	study, err := svc.Start(context.Background(), entities.ModeStudy, entities.CategoryAll)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !slices.Equal(ids(study.Words), ids(words)) {
		t.Error("study session does not keep catalog order")
	}

	practice, err := svc.Start(context.Background(), entities.ModePractice, entities.CategoryAll)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := ids(practice.Words)
	want := ids(words)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Error("practice session is not a permutation of the subset")
	}
}

func TestStart_ResetsState(t *testing.T) {
	svc := newTestSessionService(catalog(3, 3))

	s, err := svc.Start(context.Background(), entities.ModePractice, entities.CategoryAll)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Index != 0 || s.Score != 0 || s.Finished || s.Input != "" || s.Feedback.Shown {
		t.Errorf("new session not reset: %+v", s)
	}
	if s.ID == "" {
		t.Error("session has no id")
	}
}

func TestStart_Errors(t *testing.T) {
	repoErr := errors.New("boom")

	tests := []struct {
		name    string
		repo    *mockWordRepo
		mode    entities.Mode
		wantErr error
	}{
		{name: "empty subset", repo: &mockWordRepo{words: catalog(2, 0)}, mode: entities.ModeTest, wantErr: ErrNoWords},
		{name: "unknown mode", repo: &mockWordRepo{words: catalog(2, 2)}, mode: "exam", wantErr: entities.ErrUnknownMode},
		{name: "repository error", repo: &mockWordRepo{err: repoErr}, mode: entities.ModeStudy, wantErr: repoErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSessionService(tt.repo, NewShuffler(), 20, nil)
			_, err := svc.Start(context.Background(), tt.mode, entities.CategoryLoanword)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
