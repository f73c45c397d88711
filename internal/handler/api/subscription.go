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
)

type SubscriptionHandler struct {
	subscriptionCommands commands.SubscriptionCommands
	subscriptionQueries  queries.SubscriptionQueries
}

func NewSubscriptionHandler(
	subscriptionCommands commands.SubscriptionCommands,
	subscriptionQueries queries.SubscriptionQueries,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionCommands: subscriptionCommands,
		subscriptionQueries:  subscriptionQueries,
	}
}

// @Summary Subscribe to a plan
// @Tags subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Plan to subscribe to"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.subscriptionCommands.Subscribe(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, commands.ErrActiveSubscriptionExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An active subscription already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubscriptionView(view))
}

// @Summary Get my subscription
// @Tags subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /subscriptions/me [get]
func (h *SubscriptionHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.subscriptionQueries.GetActiveByClient(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Renew my subscription
// @Description Advance the billing cycle and mint a fresh batch of credits
// @Tags subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /subscriptions/renew [post]
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.subscriptionCommands.Renew(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription"})
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Cancel my subscription
// @Description Cancel the active subscription and forfeit remaining credits
// @Tags subscriptions
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /subscriptions [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.subscriptionCommands.Cancel(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
