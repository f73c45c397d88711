package repository

import (
	"context"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const insertAppointmentSQL = `
INSERT INTO appointments (id, client_id, pet_id, start_time, status, notes, from_subscription)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const insertAppointmentServiceSQL = `
INSERT INTO appointment_services (appointment_id, service_id, name, duration_minutes, price_cents)
VALUES ($1, $2, $3, $4, $5)`

// Create persists the appointment together with a per-service snapshot of
// name, duration and price, so later catalog edits do not rewrite history.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertAppointmentSQL,
		appt.ID(),
		appt.ClientID(),
		appt.PetID(),
		appt.StartTime(),
		appt.Status().String(),
		appt.Notes(),
		appt.FromSubscription(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("appointment references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	for _, svc := range appt.Services() {
		if _, err := tx.Exec(ctx, insertAppointmentServiceSQL,
			id, svc.ID(), svc.Name(), svc.DurationMinutes(), svc.PriceCents(),
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to attach service to appointment", err)
		}
	}

	return id, nil
}

const findAppointmentSQL = `
SELECT id, client_id, pet_id, status, start_time, from_subscription
FROM appointments
WHERE id = $1`

func (r *AppointmentRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var snap shared.AppointmentSnapshot
	var status string
	err := tx.QueryRow(ctx, findAppointmentSQL, id).Scan(
		&snap.ID, &snap.ClientID, &snap.PetID, &status, &snap.StartTime, &snap.FromSubscription,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	snap.Status = appointment.Status(status)
	return &snap, nil
}

const dayOccupancySQL = `
SELECT a.id, a.start_time, COALESCE(SUM(aps.duration_minutes), 0)
FROM appointments a
JOIN appointment_services aps ON aps.appointment_id = a.id
WHERE a.status <> 'CANCELLED'
  AND a.start_time >= $1
  AND a.start_time < $2
GROUP BY a.id, a.start_time
ORDER BY a.start_time, a.id`

func (r *AppointmentRepository) FindDayOccupancy(ctx context.Context, tx db.DBTX, dayStart, dayEnd time.Time) ([]appointment.Booked, error) {
	rows, err := tx.Query(ctx, dayOccupancySQL, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan day occupancy", err)
	}
	defer rows.Close()

	var booked []appointment.Booked
	for rows.Next() {
		var (
			id       uuid.UUID
			start    time.Time
			duration int
		)
		if err := rows.Scan(&id, &start, &duration); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		booked = append(booked, appointment.Booked{
			ID: id,
			Window: appointment.Window{
				Start: start,
				End:   start.Add(time.Duration(duration) * time.Minute),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy rows", err)
	}
	return booked, nil
}

const updateAppointmentStatusSQL = `
UPDATE appointments
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status appointment.Status) error {
	tag, err := tx.Exec(ctx, updateAppointmentStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
