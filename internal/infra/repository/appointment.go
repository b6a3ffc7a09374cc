package repository

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const confirmedBetweenQuery = `
SELECT start_at, end_at
FROM appointments
WHERE status = 'CONFIRMED'
  AND start_at < $2
  AND end_at > $1
ORDER BY start_at ASC`

// ConfirmedBetween returns the busy spans of Confirmed appointments that
// intersect [from, to). Cancelled rows never block availability.
func (r *AppointmentRepository) ConfirmedBetween(ctx context.Context, from, to time.Time) ([]readmodel.AppointmentSpan, error) {
	rows, err := r.pool.Query(ctx, confirmedBetweenQuery, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query confirmed appointments", err)
	}
	defer rows.Close()

	var spans []readmodel.AppointmentSpan
	for rows.Next() {
		var s readmodel.AppointmentSpan
		if err := rows.Scan(&s.StartAt, &s.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment span", err)
		}
		spans = append(spans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment spans", err)
	}

	return spans, nil
}

const countOverlapQuery = `
SELECT count(*)
FROM appointments
WHERE status = 'CONFIRMED'
  AND start_at < $2
  AND end_at > $1`

const insertAppointmentQuery = `
INSERT INTO appointments (id, service_id, customer_name, phone, email, notes, start_at, end_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at`

// CreateIfFree inserts the appointment only if no Confirmed appointment
// overlaps its busy span. The check and the insert run in one transaction,
// and the appointment_no_overlap_confirmed exclusion constraint backstops
// any race the check misses; both paths surface as KindConflict.
func (r *AppointmentRepository) CreateIfFree(ctx context.Context, appt *appointment.Appointment) (*readmodel.BookingView, error) {
	return db.RunInTx(ctx, r.pool, func(tx db.DBTX) (*readmodel.BookingView, error) {
		var overlapping int
		row := tx.QueryRow(ctx, countOverlapQuery, appt.StartAt(), appt.EndAt())
		if err := row.Scan(&overlapping); err != nil {
			return nil, infra.WrapRepoErr("failed to check for overlapping appointments", err)
		}
		if overlapping > 0 {
			return nil, infra.WrapRepoErr("slot already taken", nil, infra.KindConflict)
		}

		var createdAt time.Time
		row = tx.QueryRow(ctx, insertAppointmentQuery,
			appt.ID(),
			appt.ServiceID(),
			appt.CustomerName(),
			appt.Phone(),
			appt.Email(),
			appt.Notes(),
			appt.StartAt(),
			appt.EndAt(),
			string(appt.Status()),
		)
		if err := row.Scan(&createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to insert appointment", err)
		}

		return &readmodel.BookingView{
			ID:        appt.ID(),
			ServiceID: appt.ServiceID(),
			StartAt:   appt.StartAt(),
			EndAt:     appt.EndAt(),
			Status:    string(appt.Status()),
			CreatedAt: createdAt,
		}, nil
	})
}

const listUpcomingQuery = `
SELECT a.id, s.name, a.customer_name, a.phone, a.email, a.notes, a.start_at, a.end_at, a.status, a.created_at
FROM appointments a
JOIN services s ON s.id = a.service_id
WHERE a.end_at > $1
ORDER BY a.start_at ASC
LIMIT $2`

func (r *AppointmentRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]readmodel.AppointmentDetail, error) {
	rows, err := r.pool.Query(ctx, listUpcomingQuery, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}
	defer rows.Close()

	var details []readmodel.AppointmentDetail
	for rows.Next() {
		var d readmodel.AppointmentDetail
		if err := rows.Scan(
			&d.ID, &d.ServiceName, &d.CustomerName, &d.Phone, &d.Email, &d.Notes,
			&d.StartAt, &d.EndAt, &d.Status, &d.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment detail", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment details", err)
	}

	return details, nil
}

const appointmentForUpdateQuery = `
SELECT id, service_id, customer_name, phone, email, notes, start_at, end_at, status, created_at
FROM appointments
WHERE id = $1
FOR UPDATE`

const updateAppointmentStatusQuery = `
UPDATE appointments
SET status = $2
WHERE id = $1`

// Cancel locks the row, rebuilds the aggregate, and lets the entity decide
// whether the transition is allowed. A missing row maps to KindNotFound;
// an already-cancelled one maps to KindConflict so the caller can tell the
// two apart.
func (r *AppointmentRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	_, err := db.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		appt, err := r.lockAppointment(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}

		if err := appt.Cancel(); err != nil {
			return struct{}{}, infra.WrapRepoErr("appointment is not cancellable", err, infra.KindConflict)
		}

		if _, err := tx.Exec(ctx, updateAppointmentStatusQuery, id, string(appt.Status())); err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to update appointment status", err)
		}
		return struct{}{}, nil
	})
	return err
}

func (r *AppointmentRepository) lockAppointment(ctx context.Context, tx db.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row := tx.QueryRow(ctx, appointmentForUpdateQuery, id)

	var (
		apptID, serviceID         uuid.UUID
		customerName, phone       string
		email, notes              *string
		startAt, endAt, createdAt time.Time
		status                    string
	)
	if err := row.Scan(&apptID, &serviceID, &customerName, &phone, &email, &notes,
		&startAt, &endAt, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}

	return appointment.Reconstruct(
		apptID, serviceID, customerName, phone, email, notes,
		startAt, endAt, appointment.Status(status), createdAt,
	), nil
}
