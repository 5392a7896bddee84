package response

import (
	"time"

	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"fullName"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	return &UserResponse{
		ID:        rm.ID,
		Username:  rm.Username,
		Role:      rm.Role,
		FullName:  rm.FullName,
		Tags:      rm.Tags,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromUserRMs(rms []*readmodel.UserRM) []*UserResponse {
	out := make([]*UserResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromUserRM(rm))
	}
	return out
}
