package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	UserID       uuid.UUID
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalAmount  float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
