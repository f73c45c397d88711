package readstore

import (
	"context"

	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findAuthorizedUserSQL = `
SELECT id, email, role, name, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findAuthorizedUserSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.Name, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find authorized user", err)
	}
	return &view, nil
}

const findClientSQL = `
SELECT id, email, name, phone, is_active, created_at
FROM users
WHERE id = $1 AND role = 'CLIENT'`

func (r *UserReadStore) FindClientByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	var view queries.ClientView
	err := r.db.QueryRow(ctx, findClientSQL, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Phone, &view.IsActive, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return &view, nil
}

const listClientsSQL = `
SELECT id, email, name, phone, is_active, created_at
FROM users
WHERE role = 'CLIENT'
ORDER BY name
LIMIT $1 OFFSET $2`

func (r *UserReadStore) FindClients(ctx context.Context, limit, offset int32) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, listClientsSQL, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var views []*queries.ClientView
	for rows.Next() {
		var view queries.ClientView
		if err := rows.Scan(&view.ID, &view.Email, &view.Name, &view.Phone, &view.IsActive, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client rows", err)
	}
	return views, nil
}
