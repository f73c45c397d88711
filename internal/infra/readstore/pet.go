package readstore

import (
	"context"

	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

const findPetViewSQL = `
SELECT id, client_id, name, species, NULLIF(breed, ''), created_at, updated_at
FROM pets
WHERE id = $1`

func (r *PetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	var view queries.PetView
	err := r.db.QueryRow(ctx, findPetViewSQL, id).Scan(
		&view.ID, &view.ClientID, &view.Name, &view.Species, &view.Breed, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet view", err)
	}
	return &view, nil
}

const listPetsByClientSQL = `
SELECT id, client_id, name, species, NULLIF(breed, ''), created_at, updated_at
FROM pets
WHERE client_id = $1
ORDER BY name`

func (r *PetReadStore) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*queries.PetView, error) {
	rows, err := r.db.Query(ctx, listPetsByClientSQL, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	var views []*queries.PetView
	for rows.Next() {
		var view queries.PetView
		if err := rows.Scan(&view.ID, &view.ClientID, &view.Name, &view.Species, &view.Breed, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pet rows", err)
	}
	return views, nil
}
