package readstore

import (
	"context"
	"time"

	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const findAppointmentViewSQL = `
SELECT a.id, a.client_id, c.name, a.pet_id, p.name,
       a.start_time, a.status, a.notes, a.from_subscription,
       a.created_at, a.updated_at
FROM appointments a
JOIN users c ON c.id = a.client_id
JOIN pets p ON p.id = a.pet_id
WHERE a.id = $1`

const findAppointmentServicesSQL = `
SELECT service_id, name, duration_minutes, price_cents
FROM appointment_services
WHERE appointment_id = $1
ORDER BY name`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var view queries.AppointmentView
	err := r.db.QueryRow(ctx, findAppointmentViewSQL, id).Scan(
		&view.ID, &view.ClientID, &view.ClientName, &view.PetID, &view.PetName,
		&view.StartTime, &view.Status, &view.Notes, &view.FromSubscription,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment view", err)
	}

	rows, err := r.db.Query(ctx, findAppointmentServicesSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment services", err)
	}
	defer rows.Close()

	for rows.Next() {
		var svc queries.AppointmentServiceView
		if err := rows.Scan(&svc.ServiceID, &svc.Name, &svc.DurationMinutes, &svc.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment service", err)
		}
		view.Services = append(view.Services, svc)
		view.DurationMinutes += svc.DurationMinutes
		view.TotalPriceCents += svc.PriceCents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment services", err)
	}

	view.EndTime = view.StartTime.Add(time.Duration(view.DurationMinutes) * time.Minute)
	return &view, nil
}

const listAppointmentsByClientSQL = `
SELECT a.id, a.client_id, c.name, p.name, a.start_time, a.status, a.created_at,
       COALESCE(SUM(aps.duration_minutes), 0)
FROM appointments a
JOIN users c ON c.id = a.client_id
JOIN pets p ON p.id = a.pet_id
JOIN appointment_services aps ON aps.appointment_id = a.id
WHERE a.client_id = $1
GROUP BY a.id, a.client_id, c.name, p.name, a.start_time, a.status, a.created_at
ORDER BY a.start_time DESC
LIMIT $2 OFFSET $3`

func (r *AppointmentReadStore) FindByClient(ctx context.Context, clientID uuid.UUID, limit, offset int32) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, listAppointmentsByClientSQL, clientID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client appointments", err)
	}
	defer rows.Close()
	return scanAppointmentList(rows)
}

const listAppointmentsByDaySQL = `
SELECT a.id, a.client_id, c.name, p.name, a.start_time, a.status, a.created_at,
       COALESCE(SUM(aps.duration_minutes), 0)
FROM appointments a
JOIN users c ON c.id = a.client_id
JOIN pets p ON p.id = a.pet_id
JOIN appointment_services aps ON aps.appointment_id = a.id
WHERE a.start_time >= $1 AND a.start_time < $2
GROUP BY a.id, a.client_id, c.name, p.name, a.start_time, a.status, a.created_at
ORDER BY a.start_time`

func (r *AppointmentReadStore) FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, listAppointmentsByDaySQL, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list day appointments", err)
	}
	defer rows.Close()
	return scanAppointmentList(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAppointmentList(rows rowScanner) ([]*queries.AppointmentListItem, error) {
	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			item     queries.AppointmentListItem
			duration int
		)
		if err := rows.Scan(
			&item.ID, &item.ClientID, &item.ClientName, &item.PetName,
			&item.StartTime, &item.Status, &item.CreatedAt, &duration,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment list row", err)
		}
		item.EndTime = item.StartTime.Add(time.Duration(duration) * time.Minute)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment list rows", err)
	}
	return items, nil
}
