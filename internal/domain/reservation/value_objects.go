package reservation

import (
	"errors"
	"time"
)

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidStayPeriod = errors.New("check-in date must be before check-out date")
	ErrInvalidDateFormat = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidAmount     = errors.New("total amount must be positive")
)

// StayPeriod is a half-open [checkIn, checkOut) interval of nights.
// Timestamps are truncated to calendar days in UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := DayOf(checkIn)
	out := DayOf(checkOut)
	if !in.Before(out) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ParseStayPeriod builds a StayPeriod from YYYY-MM-DD strings.
func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.ParseInLocation(DateLayout, checkIn, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	out, err := time.ParseInLocation(DateLayout, checkOut, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrInvalidDateFormat
	}
	return NewStayPeriod(in, out)
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open intervals intersect. A stay that
// checks out the day another checks in does not overlap.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

type Amount struct {
	value float64
}

func NewAmount(value float64) (Amount, error) {
	if value <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

func (a Amount) Value() float64 {
	return a.value
}
