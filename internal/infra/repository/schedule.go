package repository

import (
	"context"
	"encoding/json"

	"petshop-booking/internal/domain/schedule"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

// The shop has exactly one settings row; the table enforces id = 1.
const getScheduleSQL = `
SELECT working_hours
FROM shop_settings
WHERE id = 1`

func (r *ScheduleRepository) Get(ctx context.Context, tx db.DBTX) (schedule.WeekConfig, error) {
	var raw []byte
	if err := tx.QueryRow(ctx, getScheduleSQL).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not configured", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load schedule", err)
	}

	var cfg schedule.WeekConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, infra.WrapRepoErr("failed to decode schedule", err)
	}
	return cfg, nil
}

const putScheduleSQL = `
INSERT INTO shop_settings (id, working_hours)
VALUES (1, $1)
ON CONFLICT (id) DO UPDATE
SET working_hours = EXCLUDED.working_hours, updated_at = now()`

func (r *ScheduleRepository) Put(ctx context.Context, tx db.DBTX, cfg schedule.WeekConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode schedule", err)
	}
	if _, err := tx.Exec(ctx, putScheduleSQL, raw); err != nil {
		return infra.WrapRepoErr("failed to store schedule", err)
	}
	return nil
}
