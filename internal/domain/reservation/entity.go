package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoomRequired = errors.New("room reference is required")
	ErrUserRequired = errors.New("user reference is required")
)

type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	stay      StayPeriod
	amount    Amount
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(roomID, userID uuid.UUID, stay StayPeriod, amount Amount) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrRoomRequired
	}
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}

	return &Reservation{
		id:     uuid.New(),
		roomID: roomID,
		userID: userID,
		stay:   stay,
		amount: amount,
	}, nil
}

func ReconstructReservation(
	id, roomID, userID uuid.UUID,
	stay StayPeriod,
	amount Amount,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		stay:      stay,
		amount:    amount,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Stay() StayPeriod     { return r.stay }
func (r *Reservation) Amount() Amount       { return r.amount }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) HasEnded(now time.Time) bool {
	return !now.Before(r.stay.CheckOut())
}
