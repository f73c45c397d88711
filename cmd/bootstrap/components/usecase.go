package components

import (
	"petshop-booking/internal/pkg/clock"
	"petshop-booking/internal/usecase"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewServiceQueries,
		queries.NewPlanQueries,
		queries.NewSubscriptionQueries,
		queries.NewUserQueries,
		queries.NewPetQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewAppointmentCommands,
		commands.NewCatalogCommands,
		commands.NewClientCommands,
		commands.NewSubscriptionCommands,
		commands.NewScheduleCommands,
	),
)
