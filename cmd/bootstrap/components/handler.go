package components

import (
	"petshop-booking/internal/handler"
	"petshop-booking/internal/handler/api"
	"petshop-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewCatalogHandler,
		api.NewClientHandler,
		api.NewPetHandler,
		api.NewSubscriptionHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	appointment *api.AppointmentHandler,
	catalog *api.CatalogHandler,
	client *api.ClientHandler,
	pet *api.PetHandler,
	subscription *api.SubscriptionHandler,
	schedule *api.ScheduleHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Appointment:  appointment,
		Catalog:      catalog,
		Client:       client,
		Pet:          pet,
		Subscription: subscription,
		Schedule:     schedule,
	}
}
