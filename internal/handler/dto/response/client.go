package response

import (
	"time"

	"petshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		Phone:     v.Phone,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPetView(v *queries.PetView) *PetResponse {
	return &PetResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Name:      v.Name,
		Species:   v.Species,
		Breed:     v.Breed,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
