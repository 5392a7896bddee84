package request

import (
	"stayhub/internal/usecase"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID   uuid.UUID `json:"hotelId" binding:"required"`
	Number    int32     `json:"number" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Capacity  int32     `json:"capacity" binding:"required"`
	Price     float64   `json:"price" binding:"required"`
	Amenities *string   `json:"amenities,omitempty"`
}

func (r CreateRoomRequest) ToParams() usecase.CreateRoomParams {
	return usecase.CreateRoomParams{
		HotelID:   r.HotelID,
		Number:    r.Number,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Price:     r.Price,
		Amenities: r.Amenities,
	}
}

type UpdateRoomRequest struct {
	Number    *int32   `json:"number,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Capacity  *int32   `json:"capacity,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Amenities *string  `json:"amenities,omitempty"`
}

func (r UpdateRoomRequest) ToParams() usecase.UpdateRoomParams {
	return usecase.UpdateRoomParams{
		Number:    r.Number,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Price:     r.Price,
		Amenities: r.Amenities,
	}
}
