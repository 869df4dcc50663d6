package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/diamond-picks/internal/models"
)

// PostgresStore persists tracked bets in PostgreSQL for multi-session
// deployments. Detail structs are stored as JSONB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS tracked_bets (
	id               TEXT PRIMARY KEY,
	placed_at        TIMESTAMPTZ NOT NULL,
	game_id          TEXT NOT NULL,
	home_team        TEXT NOT NULL DEFAULT '',
	away_team        TEXT NOT NULL DEFAULT '',
	kind             TEXT NOT NULL,
	selection        TEXT NOT NULL DEFAULT '',
	odds             INTEGER NOT NULL,
	stake            NUMERIC(12,2) NOT NULL,
	potential_payout NUMERIC(12,2) NOT NULL,
	confidence       DOUBLE PRECISION NOT NULL DEFAULT 0,
	model_score      DOUBLE PRECISION NOT NULL DEFAULT 0,
	status           TEXT NOT NULL,
	resolved_at      TIMESTAMPTZ,
	actual_payout    NUMERIC(12,2) NOT NULL DEFAULT 0,
	profit           NUMERIC(12,2) NOT NULL DEFAULT 0,
	roi              DOUBLE PRECISION NOT NULL DEFAULT 0,
	detail           JSONB,
	notes            TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_tracked_bets_placed_at ON tracked_bets (placed_at);
CREATE INDEX IF NOT EXISTS idx_tracked_bets_status ON tracked_bets (status);
`

// EnsureSchema creates the bet table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure tracking schema: %w", err)
	}
	return nil
}

type betDetail struct {
	Total      *models.TotalDetail      `json:"total,omitempty"`
	Runline    *models.RunlineDetail    `json:"runline,omitempty"`
	PlayerProp *models.PlayerPropDetail `json:"player_prop,omitempty"`
	Parlay     *models.ParlayDetail     `json:"parlay,omitempty"`
}

// Insert stores a new bet.
func (s *PostgresStore) Insert(ctx context.Context, bet models.TrackedBet) error {
	detail, err := json.Marshal(betDetail{
		Total:      bet.Total,
		Runline:    bet.Runline,
		PlayerProp: bet.PlayerProp,
		Parlay:     bet.Parlay,
	})
	if err != nil {
		return fmt.Errorf("failed to encode bet detail: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO tracked_bets (
			id, placed_at, game_id, home_team, away_team, kind, selection, odds,
			stake, potential_payout, confidence, model_score, status,
			resolved_at, actual_payout, profit, roi, detail, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		bet.ID, bet.PlacedAt, bet.GameID, bet.HomeTeam, bet.AwayTeam,
		bet.Kind, bet.Selection, bet.Odds, bet.Stake, bet.PotentialPayout,
		bet.Confidence, bet.ModelScore, bet.Status,
		bet.ResolvedAt, bet.ActualPayout, bet.Profit, bet.ROI, detail, bet.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// Get returns the bet with the given id or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id string) (models.TrackedBet, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, placed_at, game_id, home_team, away_team, kind, selection, odds,
		       stake, potential_payout, confidence, model_score, status,
		       resolved_at, actual_payout, profit, roi, detail, notes
		FROM tracked_bets WHERE id = $1`, id)
	return scanBet(row)
}

// Update overwrites the resolvable fields of an existing bet. The row
// is locked for the duration so concurrent resolutions serialize.
func (s *PostgresStore) Update(ctx context.Context, bet models.TrackedBet) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var current string
		err := tx.QueryRow(ctx, `SELECT status FROM tracked_bets WHERE id = $1 FOR UPDATE`, bet.ID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE tracked_bets
			SET status = $2, resolved_at = $3, actual_payout = $4, profit = $5, roi = $6, notes = $7
			WHERE id = $1`,
			bet.ID, bet.Status, bet.ResolvedAt, bet.ActualPayout, bet.Profit, bet.ROI, bet.Notes,
		)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to update bet: %w", err)
	}
	return nil
}

// List returns all bets in placement order.
func (s *PostgresStore) List(ctx context.Context) ([]models.TrackedBet, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, placed_at, game_id, home_team, away_team, kind, selection, odds,
		       stake, potential_payout, confidence, model_score, status,
		       resolved_at, actual_payout, profit, roi, detail, notes
		FROM tracked_bets ORDER BY placed_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}
	defer rows.Close()

	var bets []models.TrackedBet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

// Clear removes every tracked bet.
func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM tracked_bets`); err != nil {
		return fmt.Errorf("failed to clear bets: %w", err)
	}
	return nil
}

func scanBet(row pgx.Row) (models.TrackedBet, error) {
	var (
		bet    models.TrackedBet
		detail []byte
	)
	err := row.Scan(
		&bet.ID, &bet.PlacedAt, &bet.GameID, &bet.HomeTeam, &bet.AwayTeam,
		&bet.Kind, &bet.Selection, &bet.Odds, &bet.Stake, &bet.PotentialPayout,
		&bet.Confidence, &bet.ModelScore, &bet.Status,
		&bet.ResolvedAt, &bet.ActualPayout, &bet.Profit, &bet.ROI, &detail, &bet.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.TrackedBet{}, models.ErrNotFound
		}
		return models.TrackedBet{}, fmt.Errorf("failed to scan bet: %w", err)
	}

	if len(detail) > 0 {
		var d betDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return models.TrackedBet{}, fmt.Errorf("failed to decode bet detail: %w", err)
		}
		bet.Total = d.Total
		bet.Runline = d.Runline
		bet.PlayerProp = d.PlayerProp
		bet.Parlay = d.Parlay
	}
	return bet, nil
}
