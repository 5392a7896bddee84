package request

import "stayhub/internal/usecase"

type CreateUserRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Role     string   `json:"role" binding:"required"`
	FullName string   `json:"fullName" binding:"required"`
	Tags     []string `json:"tags,omitempty"`
}

func (r CreateUserRequest) ToParams() usecase.CreateUserParams {
	return usecase.CreateUserParams{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		FullName: r.FullName,
		Tags:     r.Tags,
	}
}

type UpdateUserRequest struct {
	Username *string  `json:"username,omitempty"`
	Password *string  `json:"password,omitempty"`
	Role     *string  `json:"role,omitempty"`
	FullName *string  `json:"fullName,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

func (r UpdateUserRequest) ToParams() usecase.UpdateUserParams {
	return usecase.UpdateUserParams{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		FullName: r.FullName,
		Tags:     r.Tags,
	}
}
