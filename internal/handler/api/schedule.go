package api

import (
	"errors"
	"net/http"

	reqdto "petshop-booking/internal/handler/dto/request"
	resdto "petshop-booking/internal/handler/dto/response"
	"petshop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands) *ScheduleHandler {
	return &ScheduleHandler{scheduleCommands: scheduleCommands}
}

// @Summary Get operating hours
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	cfg, err := h.scheduleCommands.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, commands.ErrScheduleNotConfigured) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Operating hours are not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeekConfig(cfg))
}

// @Summary Update operating hours
// @Tags schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateScheduleRequest true "Weekly operating hours"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /schedule [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req reqdto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cfg := req.ToDomain()
	if err := h.scheduleCommands.Update(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operating hours"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeekConfig(cfg))
}
