// Package highscore keeps the ranked list of finished games.
package highscore

import (
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// MaxEntries is the number of scores the board keeps.
const MaxEntries = 10

// DateTimeLayout is the format of Entry.DateTime.
const DateTimeLayout = "2006-01-02 15:04:05"

// Entry is one ranked score.
type Entry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	DateTime string `json:"date_time"`
}

// Store persists the ranked list.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is the in-memory top list backed by a Store.
// It is safe for concurrent use; SSH sessions share one Board.
type Board struct {
	mu      sync.Mutex
	store   Store
	clock   core.Clock
	logger  *log.Logger
	entries []Entry
}

// NewBoard loads the list from store. A failed read is logged and the
// board starts empty; it is never fatal.
func NewBoard(store Store, clock core.Clock, logger *log.Logger) *Board {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}

	b := &Board{store: store, clock: clock, logger: logger}
	entries, err := store.Load()
	if err != nil {
		logger.Warn("high scores unreadable, starting empty", "err", err)
		entries = nil
	}
	b.entries = normalize(entries)
	return b
}

// Add records a score stamped with the current time and persists the
// list. Equal scores keep their arrival order.
func (b *Board) Add(name string, score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := Entry{
		Name:     strings.TrimSpace(name),
		Score:    score,
		DateTime: b.clock.Now().Format(DateTimeLayout),
	}
	b.entries = normalize(append(b.entries, entry))

	if err := b.store.Save(b.entries); err != nil {
		b.logger.Error("cannot save high scores", "err", err)
		return err
	}
	b.logger.Debug("score recorded", "name", entry.Name, "score", score)
	return nil
}

// Entries returns a copy of the ranked list, best first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

// Qualifies reports whether score would make the list.
func (b *Board) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries) < MaxEntries || score > b.entries[len(b.entries)-1].Score
}

// Clear empties the list and persists the result.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	return b.store.Save(nil)
}

// normalize sorts descending by score, stable, and caps the list.
func normalize(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
