package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliskhannn/sunhwa-master/assets"
	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

const sampleCatalog = `{"words":[
	{"id":"1","original":"스크린도어","purified":["안전문"],"category":"외래어"},
	{"id":"2","original":"익일","purified":["다음 날","이튿날"],"category":"한자어"},
	{"id":"3","original":"키오스크","purified":["무인 단말기"],"category":"최신 순화어"},
	{"id":"4","original":"네티즌","purified":["누리꾼"],"category":"외래어"}
]}`

func TestNewWordRepository_BuiltInCatalog(t *testing.T) {
	repo, err := NewWordRepository(assets.Words)
	if err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}

	counts := repo.CountByCategory(context.Background())
	for _, c := range entities.Categories {
		if counts[c] == 0 {
			t.Errorf("built-in catalog has no %s words", c)
		}
	}
}

func TestGetByCategory(t *testing.T) {
	repo, err := NewWordRepository([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	tests := []struct {
		category entities.Category
		wantIDs  []string
	}{
		{category: entities.CategoryAll, wantIDs: []string{"1", "2", "3", "4"}},
		{category: entities.CategoryLoanword, wantIDs: []string{"1", "4"}},
		{category: entities.CategorySinoKorean, wantIDs: []string{"2"}},
		{category: entities.CategoryRecent, wantIDs: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			words, err := repo.GetByCategory(context.Background(), tt.category)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(words) != len(tt.wantIDs) {
				t.Fatalf("got %d words, want %d", len(words), len(tt.wantIDs))
			}
			for i, w := range words {
				if w.ID != tt.wantIDs[i] {
					t.Errorf("words[%d].ID = %s, want %s", i, w.ID, tt.wantIDs[i])
				}
				if !w.Matches(tt.category) {
					t.Errorf("word %s does not match %s", w.ID, tt.category)
				}
			}
		})
	}

	if _, err := repo.GetByCategory(context.Background(), "고유어"); !errors.Is(err, entities.ErrUnknownCategory) {
		t.Errorf("unknown category err = %v, want ErrUnknownCategory", err)
	}
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	repo, err := NewWordRepository([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	words, _ := repo.GetAll(context.Background())
	words[0].Original = "changed"

	again, _ := repo.GetAll(context.Background())
	if again[0].Original != "스크린도어" {
		t.Errorf("catalog mutated through GetAll: %q", again[0].Original)
	}
}

func TestNewWordRepository_Validation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "invalid json", data: `{`, wantErr: "unmarshal"},
		{name: "empty", data: `{"words":[]}`, wantErr: ErrEmptyCatalog.Error()},
		{name: "missing id", data: `{"words":[{"original":"a","purified":["b"],"category":"외래어"}]}`, wantErr: "no id"},
		{name: "duplicate id", data: `{"words":[
			{"id":"1","original":"a","purified":["b"],"category":"외래어"},
			{"id":"1","original":"c","purified":["d"],"category":"외래어"}]}`, wantErr: "duplicate"},
		{name: "no answers", data: `{"words":[{"id":"1","original":"a","purified":[],"category":"외래어"}]}`, wantErr: "no purified"},
		{name: "no original", data: `{"words":[{"id":"1","purified":["b"],"category":"외래어"}]}`, wantErr: "no original"},
		{name: "bad category", data: `{"words":[{"id":"1","original":"a","purified":["b"],"category":"전체"}]}`, wantErr: "unknown category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWordRepository([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewWordRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	repo, err := NewWordRepositoryFromFile(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	all, _ := repo.GetAll(context.Background())
	if len(all) != 4 {
		t.Errorf("got %d words, want 4", len(all))
	}

	if _, err := NewWordRepositoryFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}
