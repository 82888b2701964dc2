package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/readspace/library-portal/internal/schedule"
)

type BookingStatus string

const (
	BookingConfirmed      BookingStatus = "confirmed"
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingCancelled      BookingStatus = "cancelled"
	// BookingCompleted is display-only: a confirmed booking whose end time has passed.
	// It is never stored.
	BookingCompleted BookingStatus = "completed"
)

type LoanStatus string

const (
	LoanBorrowed LoanStatus = "borrowed"
	LoanReturned LoanStatus = "returned"
	LoanLate     LoanStatus = "late"
)

// Date marshals as a bare calendar day (YYYY-MM-DD).
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return errors.Errorf("scan Date: unexpected type %T", src)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// SlotList is stored as a comma-separated text column.
type SlotList []string

func (s *SlotList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return errors.Errorf("scan SlotList: unexpected type %T", src)
	}
	if raw == "" {
		*s = nil
		return nil
	}
	*s = strings.Split(raw, ",")
	return nil
}

func (s SlotList) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s SlotList) Contains(slot string) bool {
	for _, v := range s {
		if v == slot {
			return true
		}
	}
	return false
}

type Room struct {
	ID             int      `json:"-" db:"id"`
	RoomUid        string   `json:"roomUid" db:"room_uid"`
	Name           string   `json:"name" db:"name"`
	Capacity       int      `json:"capacity" db:"capacity"`
	AvailableSlots SlotList `json:"availableSlots" db:"available_slots"`
	Status         string   `json:"status" db:"status"`
}

type Booking struct {
	ID          int           `json:"-" db:"id"`
	BookingUid  string        `json:"bookingUid" db:"booking_uid"`
	RoomID      int           `json:"-" db:"room_id"`
	RoomName    string        `json:"roomName" db:"room_name"`
	Capacity    int           `json:"capacity" db:"capacity"`
	UserEmail   string        `json:"userEmail" db:"user_email"`
	Date        Date          `json:"date" db:"date"`
	StartTime   string        `json:"startTime" db:"start_time"`
	EndTime     string        `json:"endTime" db:"end_time"`
	Status      BookingStatus `json:"status" db:"status"`
	CancelledAt *time.Time    `json:"cancelledAt,omitempty" db:"cancelled_at"`
}

// BookingView is a Booking annotated with its effective display status.
// The annotation is recomputed on every read and never persisted.
type BookingView struct {
	Booking       `json:",inline"`
	DisplayStatus BookingStatus `json:"displayStatus"`
}

type Loan struct {
	ID         int        `json:"-" db:"id"`
	LoanUid    string     `json:"loanUid" db:"loan_uid"`
	BookID     int        `json:"-" db:"book_id"`
	BookTitle  string     `json:"bookTitle" db:"book_title"`
	BookAuthor string     `json:"bookAuthor" db:"book_author"`
	UserEmail  string     `json:"userEmail" db:"user_email"`
	BorrowDate *time.Time `json:"borrowDate,omitempty" db:"borrow_date"`
	DueDate    *time.Time `json:"dueDate,omitempty" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Status     LoanStatus `json:"status" db:"status"`
	FineAmount *float64   `json:"fineAmount,omitempty" db:"fine_amount"`
}

type LoanView struct {
	Loan                `json:",inline"`
	DisplayStatus       LoanStatus `json:"displayStatus"`
	EffectiveBorrowDate Date       `json:"effectiveBorrowDate"`
	IsOverdue           bool       `json:"isOverdue"`
}

type LoanReturnResponse struct {
	LoanUid    string     `json:"loanUid"`
	Status     LoanStatus `json:"status"`
	FineAmount *float64   `json:"fineAmount,omitempty"`
}

type Book struct {
	ID             int    `json:"-" db:"id"`
	BookUid        string `json:"bookUid" db:"book_uid"`
	Title          string `json:"title" db:"title"`
	Author         string `json:"author" db:"author"`
	Genre          string `json:"genre" db:"genre"`
	AvailableCount int    `json:"availableCount" db:"available_count"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Announcement struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateBookingRequest struct {
	RoomUid   string `json:"roomUid" validate:"required"`
	Date      Date   `json:"date" validate:"required"`
	Slot      string `json:"slot" validate:"required"`
	UserEmail string `json:"-" validate:"required"`
}

type CreateLoanRequest struct {
	BookUid   string `json:"bookUid" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Availability is the month view for a room: the earliest selectable day and
// the calendar grid gated by the working-day policy.
type Availability struct {
	RoomUid string           `json:"roomUid"`
	Year    int              `json:"year"`
	Month   time.Month       `json:"month"`
	MinDate Date             `json:"minDate"`
	Cells   []*schedule.Cell `json:"cells"`
}

// PaymentEvent arrives on the payments topic once the provider settles a booking.
type PaymentEvent struct {
	BookingUid string `json:"bookingUid"`
	Status     string `json:"status"`
}

// BookingEvent is published on the bookings topic on every lifecycle change.
type BookingEvent struct {
	BookingUid string        `json:"bookingUid"`
	RoomUid    string        `json:"roomUid"`
	UserEmail  string        `json:"userEmail"`
	Status     BookingStatus `json:"status"`
	Date       Date          `json:"date"`
	Slot       string        `json:"slot"`
}
