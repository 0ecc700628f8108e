package commands

import (
	"context"

	"groomly/internal/domain/catalog"
	"groomly/internal/infra"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/shared"
)

var ErrServiceNotFound = errs.New("service not found")

type CreateServiceRequest struct {
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
}

type UpdateServiceRequest struct {
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
}

type CreateServiceResult struct {
	ServiceID int64
}

type CatalogCommands interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error)
	UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) error
	DeactivateService(ctx context.Context, id int64) error
	ActivateService(ctx context.Context, id int64) error
}

type catalogUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogUseCase(uow shared.UnitOfWork) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error) {
	svc, err := catalog.NewService(req.Name, req.Description, req.PriceCents, req.DurationMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Catalog().Create(ctx, svc)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateServiceResult{ServiceID: createdID}, nil
}

func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) error {
	return uc.mutateService(ctx, id, func(svc *catalog.Service) error {
		if err := svc.Rename(req.Name, req.Description); err != nil {
			return err
		}
		if err := svc.Reprice(req.PriceCents); err != nil {
			return err
		}
		return svc.Retime(req.DurationMinutes)
	})
}

func (uc *catalogUseCaseImpl) DeactivateService(ctx context.Context, id int64) error {
	return uc.mutateService(ctx, id, func(svc *catalog.Service) error {
		svc.Deactivate()
		return nil
	})
}

func (uc *catalogUseCaseImpl) ActivateService(ctx context.Context, id int64) error {
	return uc.mutateService(ctx, id, func(svc *catalog.Service) error {
		svc.Activate()
		return nil
	})
}

func (uc *catalogUseCaseImpl) mutateService(ctx context.Context, id int64, mutate func(*catalog.Service) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ServiceByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		svc := catalog.ReconstructService(snap.ID, snap.Name, snap.Description, snap.PriceCents, snap.DurationMinutes, snap.Active, snap.CreatedAt, snap.UpdatedAt)
		if derr := mutate(svc); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr := tx.Catalog().Update(ctx, svc); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
