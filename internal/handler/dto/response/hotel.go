package response

import (
	"time"

	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromHotelRM(rm *readmodel.HotelRM) *HotelResponse {
	return &HotelResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Address:   rm.Address,
		City:      rm.City,
		State:     rm.State,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromHotelRMs(rms []*readmodel.HotelRM) []*HotelResponse {
	out := make([]*HotelResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromHotelRM(rm))
	}
	return out
}
