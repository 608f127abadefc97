package components

import (
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/session"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

// Both sides resolve per-session state through the same registry.
var baseOption = fx.Provide(
	fx.Annotate(
		func(r *session.Registry) *session.Registry { return r },
		fx.As(new(readstore.SessionSource)),
		fx.As(new(repository.SessionSource)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
	),
)
