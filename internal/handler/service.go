package handler

import (
	"context"
	"time"

	"github.com/readspace/library-portal/internal/model"
	"github.com/readspace/library-portal/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type PortalService interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	GetRoom(ctx context.Context, roomUid string) (model.Room, error)
	RoomAvailability(ctx context.Context, roomUid string, year int, month time.Month) (model.Availability, error)
	RoomSlots(ctx context.Context, roomUid string, date time.Time) ([]string, error)

	ListBookings(ctx context.Context, userEmail string) ([]model.BookingView, error)
	GetBooking(ctx context.Context, bookingUid, userEmail string) (model.BookingView, error)
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.BookingView, error)
	CancelBooking(ctx context.Context, bookingUid, userEmail string) error
	ConfirmPayment(ctx context.Context, bookingUid string) error

	ListLoans(ctx context.Context, userEmail string) ([]model.LoanView, error)
	GetLoan(ctx context.Context, loanUid, userEmail string) (model.LoanView, error)
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.LoanView, error)
	ReturnLoan(ctx context.Context, loanUid, userEmail string) (model.LoanReturnResponse, error)

	ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error)

	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int) error
}

var _ PortalService = (*service.Service)(nil)
