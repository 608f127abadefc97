package components

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(reservation.Policy{
			RequireOrderedTimes: cfg.Booking.RequireOrderedTimes,
			MaxDuration:         cfg.Booking.MaxDuration,
		})
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			reservationRepo commands.ReservationRepository,
			roomRepo commands.RoomRepository,
			factory *reservation.Factory,
			reservationQueries queries.ReservationQueries,
			cfg config.Config,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(reservationRepo, roomRepo, factory, reservationQueries, cfg.Booking.RejectOverlaps)
		},
		commands.NewProfileCommands,
		func(cfg config.Config, clk clock.Clock) commands.ContactCommands {
			return commands.NewContactCommands(cfg.Contact.DeliveryDelay, clk)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewProfileQueries,
	),
)
