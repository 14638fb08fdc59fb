package reservation

import (
	"strings"
	"time"

	"hotel-pms/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

const maxCommentLength = 2000

// Stay is the half-open night range [checkIn, checkOut) of a reservation.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !in.Before(out) {
		return Stay{}, errs.Kindf(ErrInvalidStay, "check-in %s must be before check-out %s", in.Format(dateLayout), out.Format(dateLayout))
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

// StayOf spans the given nights; nights need not be sorted.
func StayOf(nights []time.Time) (Stay, bool) {
	if len(nights) == 0 {
		return Stay{}, false
	}
	first, last := Day(nights[0]), Day(nights[0])
	for _, n := range nights[1:] {
		d := Day(n)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return Stay{checkIn: first, checkOut: last.AddDate(0, 0, 1)}, true
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) NumNights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Nights expands the stay into one date per night.
func (s Stay) Nights() []time.Time {
	nights := make([]time.Time, 0, s.NumNights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (s Stay) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// ShiftDays is the day offset between two stays' check-ins.
func (s Stay) ShiftDays(to Stay) int {
	return int(to.checkIn.Sub(s.checkIn).Hours() / 24)
}

func (s Stay) Equal(o Stay) bool {
	return s.checkIn.Equal(o.checkIn) && s.checkOut.Equal(o.checkOut)
}

func (s Stay) String() string {
	return s.checkIn.Format(dateLayout) + "/" + s.checkOut.Format(dateLayout)
}

// Day truncates t to a UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Kindf(ErrInvalidDate, "invalid date %q", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Comment is the free-text note on a reservation.
type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	value = strings.TrimSpace(value)
	if len([]rune(value)) > maxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) String() string {
	return c.value
}

func (c Comment) IsEmpty() bool {
	return c.value == ""
}
