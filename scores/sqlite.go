package scores

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createScoresSQL = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	score INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore keeps every submitted run and reads back the best ones.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("scores: open sqlite: %w", err)
	}
	if _, err := db.Exec(createScoresSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scores: create table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() ([]Entry, error) {
	rows, err := s.db.Query("SELECT name, score FROM scores ORDER BY score DESC, id ASC LIMIT ?", MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("scores: query: %w", err)
	}
	defer rows.Close()

	var table []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("scores: scan: %w", err)
		}
		table = append(table, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: query: %w", err)
	}
	return table, nil
}

func (s *SQLiteStore) Submit(e Entry) ([]Entry, error) {
	e = normalize(e)
	if _, err := s.db.Exec("INSERT INTO scores (name, score) VALUES (?, ?)", e.Name, e.Score); err != nil {
		return nil, fmt.Errorf("scores: insert: %w", err)
	}
	return s.Load()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
