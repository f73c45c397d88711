package repository

import (
	"context"

	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/infra"
	"petshop-booking/internal/infra/db"
	"petshop-booking/internal/pkg/pgconv"
	"petshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, name, phone, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.Name(), u.Phone(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, name, is_active, last_login
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, tx db.DBTX, email string) (*shared.AuthUserSnapshot, error) {
	return r.scanAuthUser(tx.QueryRow(ctx, findUserByEmailSQL, email))
}

const findUserByIDSQL = `
SELECT id, email, password_hash, role, name, is_active, last_login
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.AuthUserSnapshot, error) {
	return r.scanAuthUser(tx.QueryRow(ctx, findUserByIDSQL, id))
}

func (r *UserRepository) scanAuthUser(row interface{ Scan(dest ...any) error }) (*shared.AuthUserSnapshot, error) {
	var snap shared.AuthUserSnapshot
	var role string
	err := row.Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &role, &snap.Name, &snap.IsActive, &snap.LastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	snap.Role = user.Role(role)
	return &snap, nil
}

const updateLastLoginSQL = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
