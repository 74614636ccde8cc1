package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchRecord is one finished match.
type MatchRecord struct {
	ID         int64
	MatchID    uuid.UUID
	GameID     string
	Winner     string // "Human" or "Automated"
	HumanShots int
	CPUShots   int
	Turns      int
	Score      int
	Duration   time.Duration // stored with second precision
	CreatedAt  time.Time
}

// MatchStats aggregates the match history of a game.
type MatchStats struct {
	GameID    string
	Played    int
	HumanWins int
	AvgTurns  float64
	AvgShots  float64 // human shots per match
}

// WinRate returns the share of matches the human side won, in [0, 1].
func (m MatchStats) WinRate() float64 {
	if m.Played == 0 {
		return 0
	}
	return float64(m.HumanWins) / float64(m.Played)
}

// SaveMatch records a finished match. A zero MatchID is replaced with a new
// random one, which is returned.
func (s *Store) SaveMatch(rec MatchRecord) (uuid.UUID, error) {
	if rec.MatchID == uuid.Nil {
		rec.MatchID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, winner, human_shots, cpu_shots, turns, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID.String(),
		rec.GameID,
		rec.Winner,
		rec.HumanShots,
		rec.CPUShots,
		rec.Turns,
		rec.Score,
		int64(rec.Duration/time.Second),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

const matchColumns = `id, match_id, game_id, winner, human_shots, cpu_shots, turns, score, duration_secs, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var rec MatchRecord
	var matchID string
	var durationSecs int64
	var createdAt any

	if err := row.Scan(
		&rec.ID,
		&matchID,
		&rec.GameID,
		&rec.Winner,
		&rec.HumanShots,
		&rec.CPUShots,
		&rec.Turns,
		&rec.Score,
		&durationSecs,
		&createdAt,
	); err != nil {
		return rec, err
	}

	id, err := uuid.Parse(matchID)
	if err != nil {
		return rec, fmt.Errorf("storage: bad match id %q: %w", matchID, err)
	}
	rec.MatchID = id
	rec.Duration = time.Duration(durationSecs) * time.Second
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID uuid.UUID) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID.String(),
	)

	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches of a game, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GetMatchStats aggregates the match history of a game.
func (s *Store) GetMatchStats(gameID string) (*MatchStats, error) {
	stats := &MatchStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'Human' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(turns), 0),
		        COALESCE(AVG(human_shots), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.HumanWins, &stats.AvgTurns, &stats.AvgShots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}

	return stats, nil
}
