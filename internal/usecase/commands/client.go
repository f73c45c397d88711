package commands

import (
	"context"

	"petshop-booking/internal/domain/pet"
	"petshop-booking/internal/domain/user"
	reqdto "petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/pkg/password"
	"petshop-booking/internal/usecase/queries"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientCommands interface {
	Register(ctx context.Context, req reqdto.RegisterClientRequest) (*queries.ClientView, error)

	CreatePet(ctx context.Context, clientID uuid.UUID, req reqdto.CreatePetRequest) (*queries.PetView, error)
	UpdatePet(ctx context.Context, clientID, petID uuid.UUID, req reqdto.UpdatePetRequest) (*queries.PetView, error)
	DeletePet(ctx context.Context, clientID, petID uuid.UUID) error
}

type clientCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	petQueries  queries.PetQueries
}

func NewClientCommands(
	unitOfWork shared.UnitOfWork,
	userQueries queries.UserQueries,
	petQueries queries.PetQueries,
) ClientCommands {
	return &clientCommandsImpl{
		uow:         unitOfWork,
		userQueries: userQueries,
		petQueries:  petQueries,
	}
}

func (c *clientCommandsImpl) Register(ctx context.Context, req reqdto.RegisterClientRequest) (*queries.ClientView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newUser, err := user.NewUser(email, hash, user.RoleClient, req.Name, noteValue(req.Phone))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, tx.DB(), newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyUsed)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.userQueries.GetClient(ctx, id)
}

func (c *clientCommandsImpl) CreatePet(ctx context.Context, clientID uuid.UUID, req reqdto.CreatePetRequest) (*queries.PetView, error) {
	newPet, err := pet.New(clientID, req.Name, req.Species, noteValue(req.Breed))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Pets().Create(ctx, tx.DB(), newPet)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrClientNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.petQueries.GetByID(ctx, id)
}

func (c *clientCommandsImpl) UpdatePet(ctx context.Context, clientID, petID uuid.UUID, req reqdto.UpdatePetRequest) (*queries.PetView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := c.findOwnedPet(ctx, tx, clientID, petID)
		if err != nil {
			return err
		}

		updated := pet.Reconstruct(
			existing.ID(), existing.ClientID(), req.Name, req.Species, noteValue(req.Breed),
			existing.CreatedAt(), existing.UpdatedAt(),
		)
		if err := tx.Pets().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.petQueries.GetByID(ctx, petID)
}

func (c *clientCommandsImpl) DeletePet(ctx context.Context, clientID, petID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.findOwnedPet(ctx, tx, clientID, petID); err != nil {
			return err
		}
		if err := tx.Pets().Delete(ctx, tx.DB(), petID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *clientCommandsImpl) findOwnedPet(ctx context.Context, tx shared.Tx, clientID, petID uuid.UUID) (*pet.Pet, error) {
	existing, err := tx.Pets().FindByID(ctx, tx.DB(), petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPetNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !existing.OwnedBy(clientID) {
		return nil, ErrPetOwnership
	}
	return existing, nil
}
