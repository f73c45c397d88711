package api

import (
	"errors"
	"net/http"

	reqdto "petshop-booking/internal/handler/dto/request"
	resdto "petshop-booking/internal/handler/dto/response"
	"petshop-booking/internal/handler/middleware"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	clientCommands commands.ClientCommands
	petQueries     queries.PetQueries
}

func NewPetHandler(clientCommands commands.ClientCommands, petQueries queries.PetQueries) *PetHandler {
	return &PetHandler{
		clientCommands: clientCommands,
		petQueries:     petQueries,
	}
}

// @Summary Register a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePetRequest true "Pet details"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.clientCommands.CreatePet(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet data"})
		case errors.Is(err, commands.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary List my pets
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.petQueries.ListByClient(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.PetResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromPetView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get pet details
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [get]
func (h *PetHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	view, err := h.petQueries.GetByID(c.Request.Context(), id)
	if err != nil || view.ClientID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Update a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body reqdto.UpdatePetRequest true "Pet details"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [put]
func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	var req reqdto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.clientCommands.UpdatePet(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPetNotFound), errors.Is(err, commands.ErrPetOwnership):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Delete a pet
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	if err := h.clientCommands.DeletePet(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrPetNotFound), errors.Is(err, commands.ErrPetOwnership):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
