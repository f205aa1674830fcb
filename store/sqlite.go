package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"showdown-teambuilder/build"
)

// SQLiteStore implements TeamStore using SQLite. Builds are kept as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		build TEXT NOT NULL,
		ts INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS teams_kind_ts ON teams (kind, ts);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(t *SavedTeam) (*SavedTeam, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	buildJSON, err := json.Marshal(t.Build)
	if err != nil {
		return nil, err
	}

	saved := *t
	saved.Timestamp = now()
	if saved.ID == "" {
		saved.ID = genID(string(saved.Kind))
		_, err = s.db.Exec(`INSERT INTO teams (id, name, kind, build, ts) VALUES (?, ?, ?, ?, ?)`,
			saved.ID, saved.Name, string(saved.Kind), string(buildJSON), saved.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to insert team: %w", err)
		}
		return &saved, nil
	}

	res, err := s.db.Exec(`UPDATE teams SET name = ?, kind = ?, build = ?, ts = ? WHERE id = ?`,
		saved.Name, string(saved.Kind), string(buildJSON), saved.Timestamp, saved.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%s: %w", saved.ID, ErrNotFound)
	}
	return &saved, nil
}

func (s *SQLiteStore) List(kind Kind) ([]SavedTeam, error) {
	query := `SELECT id, name, kind, build, ts FROM teams`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY ts DESC, id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SavedTeam{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Get(id string) (*SavedTeam, error) {
	row := s.db.QueryRow(`SELECT id, name, kind, build, ts FROM teams WHERE id = ?`, id)
	t, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return t, err
}

func (s *SQLiteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTeam(sc scanner) (*SavedTeam, error) {
	var (
		t         SavedTeam
		kind      string
		buildJSON string
	)
	if err := sc.Scan(&t.ID, &t.Name, &kind, &buildJSON, &t.Timestamp); err != nil {
		return nil, err
	}
	t.Kind = Kind(kind)
	t.Build = &build.Build{}
	if err := json.Unmarshal([]byte(buildJSON), t.Build); err != nil {
		return nil, fmt.Errorf("team %s: corrupt build: %w", t.ID, err)
	}
	return &t, nil
}
