package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository serves the recurring weekly calendar: business hours
// and break windows. Both tables share the same row shape so the scan
// helpers are shared too.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

const enabledWindowsForWeekdayQuery = `
SELECT day_of_week, start_min, end_min, enabled
FROM %s
WHERE day_of_week = $1 AND enabled
ORDER BY start_min ASC`

const allWindowsQuery = `
SELECT day_of_week, start_min, end_min, enabled
FROM %s
ORDER BY day_of_week ASC, start_min ASC`

func (r *ScheduleRepository) HoursForWeekday(ctx context.Context, weekday int) ([]readmodel.ScheduleWindow, error) {
	return r.queryWindows(ctx, windowsQuery(enabledWindowsForWeekdayQuery, "business_hours"), weekday)
}

func (r *ScheduleRepository) BreaksForWeekday(ctx context.Context, weekday int) ([]readmodel.ScheduleWindow, error) {
	return r.queryWindows(ctx, windowsQuery(enabledWindowsForWeekdayQuery, "break_windows"), weekday)
}

func (r *ScheduleRepository) ListHours(ctx context.Context) ([]readmodel.ScheduleWindow, error) {
	return r.queryWindows(ctx, windowsQuery(allWindowsQuery, "business_hours"))
}

func (r *ScheduleRepository) ListBreaks(ctx context.Context) ([]readmodel.ScheduleWindow, error) {
	return r.queryWindows(ctx, windowsQuery(allWindowsQuery, "break_windows"))
}

// ReplaceHours swaps the whole weekly hours table in one transaction, the
// same replace-all shape the admin surface exposes.
func (r *ScheduleRepository) ReplaceHours(ctx context.Context, rows []readmodel.ScheduleWindow) error {
	return r.replaceWindows(ctx, "business_hours", rows)
}

func (r *ScheduleRepository) ReplaceBreaks(ctx context.Context, rows []readmodel.ScheduleWindow) error {
	return r.replaceWindows(ctx, "break_windows", rows)
}

func (r *ScheduleRepository) queryWindows(ctx context.Context, query string, args ...any) ([]readmodel.ScheduleWindow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query schedule windows", err)
	}
	defer rows.Close()

	var windows []readmodel.ScheduleWindow
	for rows.Next() {
		var w readmodel.ScheduleWindow
		if err := rows.Scan(&w.DayOfWeek, &w.StartMin, &w.EndMin, &w.Enabled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule windows", err)
	}

	return windows, nil
}

func (r *ScheduleRepository) replaceWindows(ctx context.Context, table string, rows []readmodel.ScheduleWindow) error {
	_, err := db.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to clear schedule windows", err)
		}

		insert := "INSERT INTO " + table + " (day_of_week, start_min, end_min, enabled) VALUES ($1, $2, $3, $4)"
		for _, w := range rows {
			if _, err := tx.Exec(ctx, insert, w.DayOfWeek, w.StartMin, w.EndMin, w.Enabled); err != nil {
				return struct{}{}, infra.WrapRepoErr("failed to insert schedule window", err)
			}
		}
		return struct{}{}, nil
	})
	return err
}

func windowsQuery(template, table string) string {
	// The table name is a compile-time constant, never user input.
	return fmt.Sprintf(template, table)
}
