package api

import (
	"errors"
	"net/http"

	reqdto "petshop-booking/internal/handler/dto/request"
	resdto "petshop-booking/internal/handler/dto/response"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	serviceQueries  queries.ServiceQueries
	planQueries     queries.PlanQueries
}

func NewCatalogHandler(
	catalogCommands commands.CatalogCommands,
	serviceQueries queries.ServiceQueries,
	planQueries queries.PlanQueries,
) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		serviceQueries:  serviceQueries,
		planQueries:     planQueries,
	}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.serviceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.ServiceResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromServiceView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get service details
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create a service
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequest true "Service definition"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update a service
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service definition"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service data"})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Delete a service
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	if err := h.catalogCommands.DeleteService(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, commands.ErrServiceInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Service is referenced by appointments or plans"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List subscription plans
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	views, err := h.planQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]*resdto.PlanResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromPlanView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get plan details
// @Tags catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} resdto.PlanResponse
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [get]
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	view, err := h.planQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanView(view))
}

// @Summary Create a subscription plan
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePlanRequest true "Plan definition"
// @Success 201 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /plans [post]
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req reqdto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreatePlan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan data"})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan references unknown services"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlanView(view))
}

// @Summary Update a subscription plan
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body reqdto.UpdatePlanRequest true "Plan definition"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [put]
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var req reqdto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan data"})
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan references unknown services"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanView(view))
}

// @Summary Delete a subscription plan
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /plans/{id} [delete]
func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	if err := h.catalogCommands.DeletePlan(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, commands.ErrPlanInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Plan has active subscriptions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
