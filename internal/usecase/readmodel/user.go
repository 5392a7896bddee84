package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// UserRM never carries the password hash; only the auth usecase sees it,
// through UserRepository.FindByUsername.
type UserRM struct {
	ID        uuid.UUID
	Username  string
	Role      string
	FullName  string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
