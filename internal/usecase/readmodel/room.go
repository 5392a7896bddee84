package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	Number    int32
	Type      string
	Capacity  int32
	Price     float64
	Amenities *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
