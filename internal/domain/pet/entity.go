package pet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("pet name cannot be empty")
	ErrEmptySpecies = errors.New("pet species cannot be empty")
)

type Pet struct {
	id        uuid.UUID
	clientID  uuid.UUID
	name      string
	species   string
	breed     string
	createdAt time.Time
	updatedAt time.Time
}

func New(clientID uuid.UUID, name, species, breed string) (*Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	species = strings.TrimSpace(species)
	if species == "" {
		return nil, ErrEmptySpecies
	}
	return &Pet{
		id:       uuid.New(),
		clientID: clientID,
		name:     name,
		species:  species,
		breed:    strings.TrimSpace(breed),
	}, nil
}

func Reconstruct(id, clientID uuid.UUID, name, species, breed string, createdAt, updatedAt time.Time) *Pet {
	return &Pet{
		id:        id,
		clientID:  clientID,
		name:      name,
		species:   species,
		breed:     breed,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) ClientID() uuid.UUID  { return p.clientID }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Species() string      { return p.species }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }

func (p *Pet) OwnedBy(clientID uuid.UUID) bool {
	return p.clientID == clientID
}
