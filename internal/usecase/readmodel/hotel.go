package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type HotelRM struct {
	ID        uuid.UUID
	Name      string
	Address   *string
	City      *string
	State     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
