package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/infra/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewProfileHandler,
		api.NewContactHandler,
		api.NewSessionHandler,
		middleware.NewSessionMiddleware,
		fx.Annotate(
			func(r *session.Registry) *session.Registry { return r },
			fx.As(new(api.SessionDropper)),
		),
		func(
			reservation *api.ReservationHandler,
			room *api.RoomHandler,
			profile *api.ProfileHandler,
			contact *api.ContactHandler,
			sess *api.SessionHandler,
		) handler.Handlers {
			return handler.Handlers{
				Reservation: reservation,
				Room:        room,
				Profile:     profile,
				Contact:     contact,
				Session:     sess,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
