package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petshop-booking/internal/handler/api"
	"petshop-booking/internal/handler/middleware"
	"petshop-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Appointment  *api.AppointmentHandler
	Catalog      *api.CatalogHandler
	Client       *api.ClientHandler
	Pet          *api.PetHandler
	Subscription *api.SubscriptionHandler
	Schedule     *api.ScheduleHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(requireAuth)
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.ListMine},
				{Method: http.MethodGet, Path: "/day", Handler: h.Appointment.ListByDay, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.GetByID},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointment.UpdateStatus, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Cancel},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
			})

			servicesAdmin := services.Group("")
			servicesAdmin.Use(requireAuth, requireAdmin)
			addRoutes(servicesAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteService},
			})
		}

		plans := apiGroup.Group("/plans")
		{
			addRoutes(plans, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListPlans},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetPlan},
			})

			plansAdmin := plans.Group("")
			plansAdmin.Use(requireAuth, requireAdmin)
			addRoutes(plansAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreatePlan},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdatePlan},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeletePlan},
			})
		}

		clients := apiGroup.Group("/clients")
		{
			addRoutes(clients, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Client.Register},
			})

			clientsAdmin := clients.Group("")
			clientsAdmin.Use(requireAuth, requireAdmin)
			addRoutes(clientsAdmin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Client.GetByID},
			})
		}

		pets := apiGroup.Group("/pets")
		pets.Use(requireAuth)
		{
			addRoutes(pets, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Pet.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Pet.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Pet.GetByID},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Pet.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Pet.Delete},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(requireAuth)
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Subscription.Subscribe},
				{Method: http.MethodGet, Path: "/me", Handler: h.Subscription.GetMine},
				{Method: http.MethodPost, Path: "/renew", Handler: h.Subscription.Renew},
				{Method: http.MethodDelete, Path: "", Handler: h.Subscription.Cancel},
			})
		}

		schedule := apiGroup.Group("/schedule")
		{
			addRoutes(schedule, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Schedule.Get},
				{Method: http.MethodPut, Path: "", Handler: h.Schedule.Update, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
