package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"driftwatch/internal/errors"
	"driftwatch/ports"
)

// EpisodeRepository implements ports.EpisodeSink on PostgreSQL
type EpisodeRepository struct {
	db *sqlx.DB
}

// NewEpisodeRepository creates a new PostgreSQL episode repository
func NewEpisodeRepository(db *sqlx.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

var _ ports.EpisodeSink = (*EpisodeRepository)(nil)

// Migrate creates the episodes table if it does not exist
func (r *EpisodeRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS drift_episodes (
			id UUID PRIMARY KEY,
			session_id TEXT NOT NULL,
			task TEXT NOT NULL,
			reward DOUBLE PRECISION NOT NULL,
			success BOOLEAN NOT NULL,
			critique TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to create drift_episodes table")
	}
	return nil
}

// StoreEpisode inserts one outcome record and returns its id
func (r *EpisodeRepository) StoreEpisode(ctx context.Context, episode ports.Episode) (string, error) {
	id := uuid.New()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drift_episodes (id, session_id, task, reward, success, critique, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, episode.SessionID, episode.Task, episode.Reward, episode.Success, episode.Critique, time.Now().UTC())

	if err != nil {
		return "", errors.Wrap(err, "failed to store episode")
	}
	return id.String(), nil
}

// RecentEpisodes returns the newest episodes for a session, newest first
func (r *EpisodeRepository) RecentEpisodes(ctx context.Context, sessionID string, limit int) ([]EpisodeRow, error) {
	var rows []EpisodeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, session_id, task, reward, success, critique, created_at
		FROM drift_episodes
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query episodes")
	}
	return rows, nil
}

// EpisodeRow is the database shape of a stored episode
type EpisodeRow struct {
	ID        uuid.UUID `db:"id"`
	SessionID string    `db:"session_id"`
	Task      string    `db:"task"`
	Reward    float64   `db:"reward"`
	Success   bool      `db:"success"`
	Critique  string    `db:"critique"`
	CreatedAt time.Time `db:"created_at"`
}
