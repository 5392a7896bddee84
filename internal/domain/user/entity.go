package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrFullNameRequired = errors.New("full name is required")

type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	fullName     string
	tags         []string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role, fullName string, tags []string) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		fullName:     fullName,
		tags:         tags,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Tags() []string       { return u.tags }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
