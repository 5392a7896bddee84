package components

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewHotelUseCase,
		usecase.NewRoomUseCase,
		usecase.NewReservationUseCase,
		usecase.NewUserUseCase,
		usecase.NewTokenValidator,
	),
)
