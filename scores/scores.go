// Package scores keeps the high-score table and its persistence backends.
package scores

import (
	"sort"
	"strings"
)

// MaxEntries is the size of the high-score table.
const MaxEntries = 10

const defaultName = "PLAYER"

type Entry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// Store persists the high-score table. Submit returns the table after the
// entry has been considered.
type Store interface {
	Load() ([]Entry, error)
	Submit(Entry) ([]Entry, error)
	Close() error
}

// Insert adds e to a table already in order and returns the best
// MaxEntries, highest first. Equal scores keep their insertion order, so a
// newcomer ranks below an existing entry with the same score.
func Insert(table []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(table)+1)
	out = append(out, table...)
	out = append(out, normalize(e))
	return Rank(out)
}

// Rank sorts entries by descending score and caps the result.
func Rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Qualifies reports whether score would enter the table.
func Qualifies(table []Entry, score int) bool {
	if len(table) < MaxEntries {
		return true
	}
	return score > table[len(table)-1].Score
}

func normalize(e Entry) Entry {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		e.Name = defaultName
	}
	if e.Score < 0 {
		e.Score = 0
	}
	return e
}
