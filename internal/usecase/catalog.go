package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Service, error)
	ListActive(ctx context.Context) ([]readmodel.Service, error)
}

type CatalogUseCase interface {
	ListServices(ctx context.Context) ([]readmodel.Service, error)
}

type catalogUseCaseImpl struct {
	serviceRepo ServiceRepository
}

func NewCatalogUseCase(serviceRepo ServiceRepository) CatalogUseCase {
	return &catalogUseCaseImpl{
		serviceRepo: serviceRepo,
	}
}

func (c *catalogUseCaseImpl) ListServices(ctx context.Context) ([]readmodel.Service, error) {
	services, err := c.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}

	return services, nil
}
