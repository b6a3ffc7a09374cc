package repository

import (
	"context"
	"errors"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

const findServiceByIDQuery = `
SELECT id, name, duration_min, buffer_min, price_starting_at_cents, active
FROM services
WHERE id = $1`

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Service, error) {
	row := r.db.QueryRow(ctx, findServiceByIDQuery, id)

	var svc readmodel.Service
	err := row.Scan(&svc.ID, &svc.Name, &svc.DurationMin, &svc.BufferMin, &svc.PriceStartingAtCents, &svc.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return &svc, nil
}

const listActiveServicesQuery = `
SELECT id, name, duration_min, buffer_min, price_starting_at_cents, active
FROM services
WHERE active
ORDER BY name ASC`

func (r *ServiceRepository) ListActive(ctx context.Context) ([]readmodel.Service, error) {
	rows, err := r.db.Query(ctx, listActiveServicesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	defer rows.Close()

	var services []readmodel.Service
	for rows.Next() {
		var svc readmodel.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMin, &svc.BufferMin, &svc.PriceStartingAtCents, &svc.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	return services, nil
}
