package response

import (
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	UserID       uuid.UUID `json:"userId"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		RoomID:       rm.RoomID,
		UserID:       rm.UserID,
		CheckInDate:  rm.CheckInDate.Format(reservation.DateLayout),
		CheckOutDate: rm.CheckOutDate.Format(reservation.DateLayout),
		TotalAmount:  rm.TotalAmount,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromReservationRMs(rms []*readmodel.ReservationRM) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReservationRM(rm))
	}
	return out
}
