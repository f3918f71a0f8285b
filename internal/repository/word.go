package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

var ErrEmptyCatalog = errors.New("word catalog is empty")

// WordRepository provides read-only access to the purification term catalog.
type WordRepository struct {
	words []entities.WordItem
}

// NewWordRepository parses and validates a JSON catalog.
func NewWordRepository(data []byte) (*WordRepository, error) {
	words, err := parseWords(data)
	if err != nil {
		return nil, err
	}

	return &WordRepository{words: words}, nil
}

// NewWordRepositoryFromFile loads the catalog from a JSON file on disk.
func NewWordRepositoryFromFile(path string) (*WordRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return NewWordRepository(data)
}

// GetAll returns a copy of the catalog in its original order.
func (r *WordRepository) GetAll(_ context.Context) ([]entities.WordItem, error) {
	out := make([]entities.WordItem, len(r.words))
	copy(out, r.words)
	return out, nil
}

// GetByCategory returns the catalog entries of the given category, in catalog order.
// entities.CategoryAll returns the whole catalog.
func (r *WordRepository) GetByCategory(ctx context.Context, category entities.Category) ([]entities.WordItem, error) {
	if category == entities.CategoryAll {
		return r.GetAll(ctx)
	}
	if !category.Valid() {
		return nil, entities.ErrUnknownCategory
	}

	return lo.Filter(r.words, func(w entities.WordItem, _ int) bool {
		return w.Category == category
	}), nil
}

// CountByCategory returns the number of entries per stored category.
func (r *WordRepository) CountByCategory(_ context.Context) map[entities.Category]int {
	groups := lo.GroupBy(r.words, func(w entities.WordItem) entities.Category {
		return w.Category
	})
	return lo.MapValues(groups, func(ws []entities.WordItem, _ entities.Category) int {
		return len(ws)
	})
}

func parseWords(data []byte) ([]entities.WordItem, error) {
	var wrapper struct {
		Words []entities.WordItem `json:"words"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words JSON: %w", err)
	}

	if len(wrapper.Words) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(wrapper.Words))
	for _, w := range wrapper.Words {
		if w.ID == "" {
			return nil, fmt.Errorf("word %q has no id", w.Original)
		}
		if _, dup := seen[w.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = struct{}{}

		if w.Original == "" {
			return nil, fmt.Errorf("word %s has no original term", w.ID)
		}
		if len(w.Purified) == 0 {
			return nil, fmt.Errorf("word %s has no purified answers", w.ID)
		}
		if !w.Category.Valid() {
			return nil, fmt.Errorf("word %s: %w %q", w.ID, entities.ErrUnknownCategory, w.Category)
		}
	}

	return wrapper.Words, nil
}
