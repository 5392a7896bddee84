package components

import (
	"stayhub/internal/infra/db"
	repo_impl "stayhub/internal/infra/repository"
	"stayhub/internal/infra/uow"
	"stayhub/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side repositories run against the pool, outside transactions
		fx.Annotate(
			repo_impl.NewHotelRepository,
			fx.As(new(usecase.HotelReads)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomReads)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationReads)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserReads)),
			fx.As(new(usecase.AuthReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
