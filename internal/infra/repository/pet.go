package repository

import (
	"context"
	"time"

	"petshop-booking/internal/domain/pet"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PetRepository struct{}

func NewPetRepository() *PetRepository {
	return &PetRepository{}
}

const insertPetSQL = `
INSERT INTO pets (id, client_id, name, species, breed)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *PetRepository) Create(ctx context.Context, tx db.DBTX, p *pet.Pet) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertPetSQL, p.ID(), p.ClientID(), p.Name(), p.Species(), p.Breed()).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("pet references missing client", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create pet", err)
	}
	return id, nil
}

const findPetSQL = `
SELECT id, client_id, name, species, breed, created_at, updated_at
FROM pets
WHERE id = $1`

func (r *PetRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pet.Pet, error) {
	var (
		petID     uuid.UUID
		clientID  uuid.UUID
		name      string
		species   string
		breed     string
		createdAt time.Time
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, findPetSQL, id).Scan(&petID, &clientID, &name, &species, &breed, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet", err)
	}
	return pet.Reconstruct(petID, clientID, name, species, breed, createdAt, updatedAt), nil
}

const updatePetSQL = `
UPDATE pets
SET name = $2, species = $3, breed = $4, updated_at = now()
WHERE id = $1`

func (r *PetRepository) Update(ctx context.Context, tx db.DBTX, p *pet.Pet) error {
	tag, err := tx.Exec(ctx, updatePetSQL, p.ID(), p.Name(), p.Species(), p.Breed())
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

const deletePetSQL = `DELETE FROM pets WHERE id = $1`

func (r *PetRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deletePetSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("pet is referenced by appointments", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}
