package request

import (
	"stayhub/internal/usecase"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID       uuid.UUID `json:"roomId" binding:"required"`
	UserID       uuid.UUID `json:"userId" binding:"required"`
	CheckInDate  string    `json:"checkInDate" binding:"required"`
	CheckOutDate string    `json:"checkOutDate" binding:"required"`
	TotalAmount  float64   `json:"totalAmount" binding:"required"`
}

func (r CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		RoomID:       r.RoomID,
		UserID:       r.UserID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		TotalAmount:  r.TotalAmount,
	}
}

type UpdateReservationRequest struct {
	CheckInDate  *string  `json:"checkInDate,omitempty"`
	CheckOutDate *string  `json:"checkOutDate,omitempty"`
	TotalAmount  *float64 `json:"totalAmount,omitempty"`
}

func (r UpdateReservationRequest) ToParams() usecase.UpdateReservationParams {
	return usecase.UpdateReservationParams{
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		TotalAmount:  r.TotalAmount,
	}
}
