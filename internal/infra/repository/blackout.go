package repository

import (
	"context"
	"errors"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type BlackoutRepository struct {
	db db.DBTX
}

func NewBlackoutRepository(dbtx db.DBTX) *BlackoutRepository {
	return &BlackoutRepository{db: dbtx}
}

const findBlackoutByDateQuery = `
SELECT date_key, reason
FROM blackout_dates
WHERE date_key = $1`

// FindByDate returns the blackout for a calendar day, or nil when the day
// is not blacked out.
func (r *BlackoutRepository) FindByDate(ctx context.Context, dateKey string) (*readmodel.Blackout, error) {
	row := r.db.QueryRow(ctx, findBlackoutByDateQuery, dateKey)

	var b readmodel.Blackout
	if err := row.Scan(&b.DateKey, &b.Reason); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find blackout by date", err)
	}

	return &b, nil
}

const listBlackoutsQuery = `
SELECT date_key, reason
FROM blackout_dates
ORDER BY date_key ASC`

func (r *BlackoutRepository) List(ctx context.Context) ([]readmodel.Blackout, error) {
	rows, err := r.db.Query(ctx, listBlackoutsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	defer rows.Close()

	var blackouts []readmodel.Blackout
	for rows.Next() {
		var b readmodel.Blackout
		if err := rows.Scan(&b.DateKey, &b.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout row", err)
		}
		blackouts = append(blackouts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blackout rows", err)
	}

	return blackouts, nil
}

const upsertBlackoutQuery = `
INSERT INTO blackout_dates (date_key, reason)
VALUES ($1, $2)
ON CONFLICT (date_key) DO UPDATE SET reason = EXCLUDED.reason`

// Upsert adds a blackout or refreshes the reason when the day is already
// blacked out.
func (r *BlackoutRepository) Upsert(ctx context.Context, dateKey string, reason *string) error {
	if _, err := r.db.Exec(ctx, upsertBlackoutQuery, dateKey, reason); err != nil {
		return infra.WrapRepoErr("failed to upsert blackout", err)
	}
	return nil
}

const removeBlackoutQuery = `
DELETE FROM blackout_dates
WHERE date_key = $1`

func (r *BlackoutRepository) Remove(ctx context.Context, dateKey string) error {
	tag, err := r.db.Exec(ctx, removeBlackoutQuery, dateKey)
	if err != nil {
		return infra.WrapRepoErr("failed to remove blackout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blackout not found", nil, infra.KindNotFound)
	}
	return nil
}
