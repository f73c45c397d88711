package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User covers both shop staff (ADMIN) and clients (CLIENT). Client records
// double as the customer register; appointments and subscriptions reference
// them by id.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	name         string
	phone        string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, name, phone string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		phone:        strings.TrimSpace(phone),
		isActive:     true,
	}, nil
}

func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, name, phone string, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		phone:        phone,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Name() string          { return u.name }
func (u *User) Phone() string         { return u.phone }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) IsClient() bool { return u.role == RoleClient }
