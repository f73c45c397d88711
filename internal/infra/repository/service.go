package repository

import (
	"context"

	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

const insertServiceSQL = `
INSERT INTO services (id, name, duration_minutes, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, svc *catalog.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertServiceSQL, svc.ID(), svc.Name(), svc.DurationMinutes(), svc.PriceCents()).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("service name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

const findServicesByIDsSQL = `
SELECT id, name, duration_minutes, price_cents
FROM services
WHERE id = ANY($1)`

// FindByIDs resolves distinct service ids. Any id with no matching row makes
// the whole lookup a NOT_FOUND error; the booking flow never proceeds with a
// partial service set.
func (r *ServiceRepository) FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*catalog.Service, error) {
	rows, err := tx.Query(ctx, findServicesByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]*catalog.Service, len(ids))
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			duration   int
			priceCents int32
		)
		if err := rows.Scan(&id, &name, &duration, &priceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		found[id] = catalog.ReconstructService(id, name, duration, priceCents)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	services := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := found[id]
		if !ok {
			return nil, infra.WrapRepoErr("service not found: "+id.String(), nil, infra.KindNotFound)
		}
		services = append(services, svc)
	}
	return services, nil
}

const updateServiceSQL = `
UPDATE services
SET name = $2, duration_minutes = $3, price_cents = $4, updated_at = now()
WHERE id = $1`

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, svc *catalog.Service) error {
	tag, err := tx.Exec(ctx, updateServiceSQL, svc.ID(), svc.Name(), svc.DurationMinutes(), svc.PriceCents())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteServiceSQL = `DELETE FROM services WHERE id = $1`

func (r *ServiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteServiceSQL, id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("service is referenced by other rows", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
