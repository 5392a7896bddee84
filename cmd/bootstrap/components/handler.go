package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewLoginLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Hotel:       hotel,
		Room:        room,
		Reservation: reservation,
		User:        user,
	}
}

func NewLoginLimiter(cfg config.Config, rdb *redis.Client) gin.HandlerFunc {
	return middleware.NewTokenBucket(cfg.RateLimit, rdb)
}
