package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/user"
	reqdto "petshop-booking/internal/handler/dto/request"
	resdto "petshop-booking/internal/handler/dto/response"
	"petshop-booking/internal/handler/middleware"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	bookingCommands     commands.BookingCommands
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	bookingCommands commands.BookingCommands,
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingCommands:     bookingCommands,
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Book an appointment
// @Description Book services for a pet, optionally paying with subscription credits
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment data"})
		case errors.Is(err, commands.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
		case errors.Is(err, commands.ErrPetOwnership):
			c.JSON(http.StatusForbidden, gin.H{"error": "Pet does not belong to you"})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more services not found"})
		case errors.Is(err, commands.ErrScheduleNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Operating hours are not configured"})
		case errors.Is(err, commands.ErrShopClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "The shop is closed on that day"})
		case errors.Is(err, commands.ErrOutsideOperatingHours):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment falls outside operating hours"})
		case errors.Is(err, commands.ErrScheduleConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "The requested time slot is already booked"})
		case errors.Is(err, commands.ErrInsufficientCredits):
			msg := "Not enough subscription credits"
			var credErr *commands.InsufficientCreditsError
			if errors.As(err, &credErr) {
				msg = "Not enough subscription credits for " + credErr.ServiceName
			}
			c.JSON(http.StatusPaymentRequired, gin.H{"error": msg})
		case errors.Is(err, commands.ErrStorageConflict):
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not complete booking, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment details
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if role != user.RoleAdmin && view.ClientID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List my appointments
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.AppointmentListResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.appointmentQueries.ListByClient(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		responses[i] = resdto.FromAppointmentListItem(item)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List appointments for a day
// @Description Staff view of the schedule for a single day
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param date query string true "Day in YYYY-MM-DD"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /appointments/day [get]
func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	dayStart := day
	dayEnd := dayStart.Add(24 * time.Hour)

	items, err := h.appointmentQueries.ListByDay(c.Request.Context(), dayStart, dayEnd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.AppointmentListResponse, len(items))
	for i, item := range items {
		responses[i] = resdto.FromAppointmentListItem(item)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Update appointment status
// @Description Staff operation to move an appointment through its lifecycle
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	next, err := appointment.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := h.appointmentCommands.UpdateStatus(c.Request.Context(), id, next); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel an appointment
// @Description Clients may cancel their own appointments, staff may cancel any
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.appointmentCommands.Cancel(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, commands.ErrNotAppointmentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You may only cancel your own appointments"})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment can no longer be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
