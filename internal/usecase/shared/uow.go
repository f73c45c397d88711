package shared

import (
	"context"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/catalog"
	"petshop-booking/internal/domain/pet"
	"petshop-booking/internal/domain/schedule"
	"petshop-booking/internal/domain/subscription"
	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction with retry for the booking path
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Credits() CreditRepository
	Subscriptions() SubscriptionRepository
	Plans() PlanRepository
	Services() ServiceRepository
	Pets() PetRepository
	Users() UserRepository
	Schedule() ScheduleRepository
	DB() db.DBTX
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*AppointmentSnapshot, error)
	// FindDayOccupancy returns the non-cancelled slots whose start falls in
	// [dayStart, dayEnd), ordered by start time.
	FindDayOccupancy(ctx context.Context, tx db.DBTX, dayStart, dayEnd time.Time) ([]appointment.Booked, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status appointment.Status) error
}

type CreditRepository interface {
	// Consume atomically spends one credit for the client/service pair. A
	// NOT_FOUND repository error means no row had remaining credits.
	Consume(ctx context.Context, tx db.DBTX, clientID, serviceID uuid.UUID) error
	CreateBatch(ctx context.Context, tx db.DBTX, credits []*subscription.Credit) error
	DeleteForClientPlan(ctx context.Context, tx db.DBTX, clientID, planID uuid.UUID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx db.DBTX, sub *subscription.Subscription) (uuid.UUID, error)
	FindActiveByClient(ctx context.Context, tx db.DBTX, clientID uuid.UUID) (*SubscriptionSnapshot, error)
	UpdateRenewal(ctx context.Context, tx db.DBTX, id uuid.UUID, renewalDate time.Time) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status subscription.SubStatus) error
}

type PlanRepository interface {
	Create(ctx context.Context, tx db.DBTX, plan *subscription.Plan) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*subscription.Plan, error)
	Update(ctx context.Context, tx db.DBTX, plan *subscription.Plan) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, svc *catalog.Service) (uuid.UUID, error)
	// FindByIDs resolves the distinct ids; missing ids are reported via a
	// NOT_FOUND repository error.
	FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*catalog.Service, error)
	Update(ctx context.Context, tx db.DBTX, svc *catalog.Service) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PetRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *pet.Pet) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pet.Pet, error)
	Update(ctx context.Context, tx db.DBTX, p *pet.Pet) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, tx db.DBTX, email string) (*AuthUserSnapshot, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*AuthUserSnapshot, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type ScheduleRepository interface {
	// Get returns a NOT_FOUND repository error when no schedule has been
	// configured yet.
	Get(ctx context.Context, tx db.DBTX) (schedule.WeekConfig, error)
	Put(ctx context.Context, tx db.DBTX, cfg schedule.WeekConfig) error
}
