package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "petshop-booking/internal/handler/dto/request"
	resdto "petshop-booking/internal/handler/dto/response"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientCommands commands.ClientCommands
	userQueries    queries.UserQueries
}

func NewClientHandler(clientCommands commands.ClientCommands, userQueries queries.UserQueries) *ClientHandler {
	return &ClientHandler{
		clientCommands: clientCommands,
		userQueries:    userQueries,
	}
}

// @Summary Register a client account
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Registration request"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Register(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.clientCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		case errors.Is(err, commands.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromClientView(view))
}

// @Summary List clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.userQueries.ListClients(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.ClientResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromClientView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get client details
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	view, err := h.userQueries.GetClient(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(view))
}
