package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/domain/user"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single database transaction. Everything fn
// does through tx either commits as one atomic unit or rolls back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Hotels() HotelRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Users() UserRepository
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (*readmodel.HotelRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	Update(ctx context.Context, rm *readmodel.HotelRM) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (*readmodel.RoomRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	// LockByID takes a row-level lock on the room, serializing concurrent
	// bookings for it until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, rm *readmodel.RoomRM) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int64, error)
	Update(ctx context.Context, rm *readmodel.ReservationRM) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	Update(ctx context.Context, rm *readmodel.UserRM, passwordHash *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
