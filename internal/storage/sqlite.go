// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is one finished game between the player and the computer.
type Match struct {
	ID             string // UUID, assigned by SaveMatch when empty
	Winner         string // "You" or "Computer"
	PlayerReward   int
	ComputerReward int
	Turns          int
	PlayerFinal    int // Resting cell of each piece when the match ended
	ComputerFinal  int
	Seed           int64
	CreatedAt      time.Time
}

// PlayerWon reports whether the human side won the match.
func (m Match) PlayerWon() bool {
	return m.Winner == WinnerPlayer
}

// Winner labels stored in the matches table.
const (
	WinnerPlayer   = "You"
	WinnerComputer = "Computer"
)

// ErrNotFound is returned when a match ID is unknown.
var ErrNotFound = errors.New("storage: match not found")

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			winner TEXT NOT NULL,
			player_reward INTEGER NOT NULL,
			computer_reward INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			player_final INTEGER NOT NULL,
			computer_final INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner_reward ON matches(winner, player_reward DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match and returns its ID.
func (s *Store) SaveMatch(m Match) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Winner != WinnerPlayer && m.Winner != WinnerComputer {
		return "", fmt.Errorf("storage: unknown winner %q", m.Winner)
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, winner, player_reward, computer_reward, turns, player_final, computer_final, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Winner, m.PlayerReward, m.ComputerReward,
		m.Turns, m.PlayerFinal, m.ComputerFinal, m.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return m.ID, nil
}

const matchColumns = `id, winner, player_reward, computer_reward, turns,
		        player_final, computer_final, seed, created_at`

// MatchByID retrieves one match.
func (s *Store) MatchByID(id string) (Match, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, ErrNotFound
	}
	if err != nil {
		return Match{}, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// TopRewards retrieves the player's best total rewards among won matches.
func (s *Store) TopRewards(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryMatches(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE winner = ?
		 ORDER BY player_reward DESC, turns ASC
		 LIMIT ?`,
		WinnerPlayer, limit,
	)
}

// ClearMatches deletes the whole history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all stored matches.
type Stats struct {
	Games      int
	Wins       int
	Losses     int
	AvgTurns   float64
	BestReward int // Best player reward in a won match, 0 without wins
	LastPlayed time.Time
}

// WinRate returns the share of matches the player won.
func (st Stats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// Stats retrieves aggregated statistics for the match history.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(turns), 0),
		        MAX(CASE WHEN winner = ? THEN player_reward END)
		 FROM matches`,
		WinnerPlayer, WinnerPlayer,
	).Scan(&st.Games, &st.Wins, &st.AvgTurns, &best)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.Losses = st.Games - st.Wins
	if best.Valid {
		st.BestReward = int(best.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT MAX(created_at) FROM matches`).Scan(&lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

func (s *Store) queryMatches(query string, args ...any) ([]Match, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return matches, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(r scanner) (Match, error) {
	var m Match
	var createdAt any
	err := r.Scan(
		&m.ID,
		&m.Winner,
		&m.PlayerReward,
		&m.ComputerReward,
		&m.Turns,
		&m.PlayerFinal,
		&m.ComputerFinal,
		&m.Seed,
		&createdAt,
	)
	if err != nil {
		return Match{}, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
