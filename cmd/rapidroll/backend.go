package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rapidroll/internal/core"
	"github.com/vovakirdan/tui-rapidroll/internal/highscore"
	"github.com/vovakirdan/tui-rapidroll/internal/storage"
)

// scoreBackend is the high score board plus the store behind it.
type scoreBackend struct {
	board *highscore.Board
	db    *storage.Store // nil for JSON files
	path  string
}

// isDatabasePath reports whether path names a SQLite database.
func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// openScores opens the board at path, using SQLite for database
// extensions and a JSON file otherwise.
func openScores(path string, clock core.Clock, logger *log.Logger) (*scoreBackend, error) {
	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	if isDatabasePath(expanded) {
		db, err := storage.Open(expanded)
		if err != nil {
			return nil, err
		}
		return &scoreBackend{
			board: highscore.NewBoard(db, clock, logger),
			db:    db,
			path:  expanded,
		}, nil
	}

	file := highscore.NewFileStore(expanded)
	return &scoreBackend{
		board: highscore.NewBoard(file, clock, logger),
		path:  expanded,
	}, nil
}

// Close releases the database, if any.
func (b *scoreBackend) Close() error {
	if b.db == nil {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("cannot close scores database: %w", err)
	}
	return nil
}
