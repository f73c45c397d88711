package request

type RegisterClientRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
}

type CreatePetRequest struct {
	Name    string  `json:"name" binding:"required"`
	Species string  `json:"species" binding:"required"`
	Breed   *string `json:"breed,omitempty"`
}

type UpdatePetRequest struct {
	Name    string  `json:"name" binding:"required"`
	Species string  `json:"species" binding:"required"`
	Breed   *string `json:"breed,omitempty"`
}
