package shared

import "time"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Page struct {
	Offset int32
	Limit  int32
}

// Normalize clamps the page to sane bounds so a caller can never ask the
// store for an unbounded scan.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	return p
}

// ReservationFilter narrows a reservation listing. Nil fields are ignored;
// only explicitly supplied parameters filter the result.
type ReservationFilter struct {
	CheckInFrom *time.Time
	CheckInTo   *time.Time
	MinAmount   *float64
	MaxAmount   *float64
	Page        Page
}
