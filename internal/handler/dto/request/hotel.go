package request

import "stayhub/internal/usecase"

type CreateHotelRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
}

func (r CreateHotelRequest) ToParams() usecase.CreateHotelParams {
	return usecase.CreateHotelParams{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
	}
}

type UpdateHotelRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
}

func (r UpdateHotelRequest) ToParams() usecase.UpdateHotelParams {
	return usecase.UpdateHotelParams{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
	}
}
