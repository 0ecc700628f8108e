package commands

import (
	"context"

	"groomly/internal/domain/pet"
	"groomly/internal/infra"
	"groomly/internal/pkg/errs"
	"groomly/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPetNotFound = errs.New("pet not found")

type CreatePetRequest struct {
	TutorName string
	Name      string
	Species   string
	Breed     string
	AgeYears  *int
	Notes     string
}

type UpdatePetRequest struct {
	TutorName string
	Name      string
	Species   string
	Breed     string
	AgeYears  *int
	Notes     string
}

type CreatePetResult struct {
	PetID uuid.UUID
}

type PetCommands interface {
	CreatePet(ctx context.Context, req CreatePetRequest) (*CreatePetResult, error)
	UpdatePet(ctx context.Context, id uuid.UUID, req UpdatePetRequest) error
	DeletePet(ctx context.Context, id uuid.UUID) error
}

type petUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPetUseCase(uow shared.UnitOfWork) PetCommands {
	return &petUseCaseImpl{uow: uow}
}

func (uc *petUseCaseImpl) CreatePet(ctx context.Context, req CreatePetRequest) (*CreatePetResult, error) {
	p, err := pet.NewPet(req.TutorName, req.Name, pet.Species(req.Species), req.Breed, req.AgeYears, req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Pets().Create(ctx, p)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreatePetResult{PetID: createdID}, nil
}

func (uc *petUseCaseImpl) UpdatePet(ctx context.Context, id uuid.UUID, req UpdatePetRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PetByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPetNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		p := pet.ReconstructPet(snap.ID, snap.TutorName, snap.Name, pet.Species(snap.Species), snap.Breed, snap.AgeYears, snap.Notes, snap.CreatedAt, snap.UpdatedAt)
		if derr := p.UpdateProfile(req.TutorName, req.Name, pet.Species(req.Species), req.Breed, req.AgeYears, req.Notes); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr := tx.Pets().Update(ctx, p); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *petUseCaseImpl) DeletePet(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PetByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPetNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr := tx.Pets().Delete(ctx, id); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
