package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrSlotTaken     = errors.New("slot is already booked")
	ErrNotWorkingDay = errors.New("date is not a working day")
	ErrDateTooSoon   = errors.New("date is before the earliest selectable day")
	ErrUnknownSlot   = errors.New("slot is not offered by this room")
	ErrForbidden     = errors.New("forbidden")
	ErrNoCopies      = errors.New("no available copies")
)
