package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("hotel name is required")

type Hotel struct {
	id        uuid.UUID
	name      string
	address   *string
	city      *string
	state     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(name string, address, city, state *string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Hotel{
		id:      uuid.New(),
		name:    name,
		address: address,
		city:    city,
		state:   state,
	}, nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Address() *string     { return h.address }
func (h *Hotel) City() *string        { return h.city }
func (h *Hotel) State() *string       { return h.state }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
