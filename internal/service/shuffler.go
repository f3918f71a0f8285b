package service

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler produces uniform random permutations using Fisher–Yates.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffler creates a shuffler seeded from the current time.
func NewShuffler() *Shuffler {
	return NewShufflerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewShufflerWithSource creates a shuffler over the given source.
func NewShufflerWithSource(src rand.Source) *Shuffler {
	return &Shuffler{rnd: rand.New(src)}
}

// Shuffle returns a shuffled copy of items. The input is left untouched.
func Shuffle[T any](s *Shuffler, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ShuffleWithLimit shuffles items and keeps at most limit of them.
// A non-positive limit keeps everything.
func ShuffleWithLimit[T any](s *Shuffler, items []T, limit int) []T {
	shuffled := Shuffle(s, items)

	if limit <= 0 || limit > len(shuffled) {
		limit = len(shuffled)
	}

	return shuffled[:limit]
}
