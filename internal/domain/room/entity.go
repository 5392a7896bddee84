package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber   = errors.New("room number must be positive")
	ErrTypeRequired    = errors.New("room type is required")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
	ErrInvalidPrice    = errors.New("room price must be positive")
)

type Room struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	number    int32
	roomType  string
	capacity  int32
	price     float64
	amenities *string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(hotelID uuid.UUID, number int32, roomType string, capacity int32, price float64, amenities *string) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrTypeRequired
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Room{
		id:        uuid.New(),
		hotelID:   hotelID,
		number:    number,
		roomType:  roomType,
		capacity:  capacity,
		price:     price,
		amenities: amenities,
	}, nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) HotelID() uuid.UUID   { return r.hotelID }
func (r *Room) Number() int32        { return r.number }
func (r *Room) Type() string         { return r.roomType }
func (r *Room) Capacity() int32      { return r.capacity }
func (r *Room) Price() float64       { return r.price }
func (r *Room) Amenities() *string   { return r.amenities }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
