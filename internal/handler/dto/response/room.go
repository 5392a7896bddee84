package response

import (
	"time"

	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotelId"`
	Number    int32     `json:"number"`
	Type      string    `json:"type"`
	Capacity  int32     `json:"capacity"`
	Price     float64   `json:"price"`
	Amenities *string   `json:"amenities,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	return &RoomResponse{
		ID:        rm.ID,
		HotelID:   rm.HotelID,
		Number:    rm.Number,
		Type:      rm.Type,
		Capacity:  rm.Capacity,
		Price:     rm.Price,
		Amenities: rm.Amenities,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromRoomRMs(rms []*readmodel.RoomRM) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromRoomRM(rm))
	}
	return out
}
