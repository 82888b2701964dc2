package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-portal/internal/errs"
	"github.com/readspace/library-portal/internal/model"
	"github.com/readspace/library-portal/internal/repository"
	"github.com/readspace/library-portal/internal/schedule"
	"github.com/readspace/library-portal/internal/status"
	"github.com/readspace/library-portal/pkg/kafka"
)

// loanDays is the standard checkout period.
const loanDays = 7

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	queue  kafka.Enqueuer
	policy schedule.Policy
}

func NewService(repo repository.Repository, queue kafka.Enqueuer, policy schedule.Policy, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		queue:  queue,
		policy: policy,
	}
}

func (s *Service) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, roomUid string) (model.Room, error) {
	return s.repo.GetRoom(ctx, roomUid)
}

func (s *Service) RoomAvailability(ctx context.Context, roomUid string, year int, month time.Month) (model.Availability, error) {
	room, err := s.repo.GetRoom(ctx, roomUid)
	if err != nil {
		return model.Availability{}, err
	}
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	minDate := schedule.MinSelectableDate(s.policy, now)
	return model.Availability{
		RoomUid: room.RoomUid,
		Year:    year,
		Month:   month,
		MinDate: model.Date{Time: minDate},
		Cells:   schedule.MonthGrid(year, month, s.policy, minDate),
	}, nil
}

func (s *Service) RoomSlots(ctx context.Context, roomUid string, date time.Time) ([]string, error) {
	room, err := s.repo.GetRoom(ctx, roomUid)
	if err != nil {
		return nil, err
	}
	return schedule.AvailableSlots(room.AvailableSlots, date, s.policy), nil
}

// ListBookings returns the caller's bookings annotated with their display
// status, newest first. An empty userEmail lists everyone's.
func (s *Service) ListBookings(ctx context.Context, userEmail string) ([]model.BookingView, error) {
	bookings, err := s.repo.ListBookings(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]model.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, model.BookingView{
			Booking:       b,
			DisplayStatus: status.DeriveBooking(b, now),
		})
	}
	status.SortBookings(views)
	return views, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingUid, userEmail string) (model.BookingView, error) {
	b, err := s.repo.GetBooking(ctx, bookingUid)
	if err != nil {
		return model.BookingView{}, err
	}
	if userEmail != "" && b.UserEmail != userEmail {
		return model.BookingView{}, errs.ErrForbidden
	}
	return model.BookingView{
		Booking:       b,
		DisplayStatus: status.DeriveBooking(b, time.Now()),
	}, nil
}

func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.BookingView, error) {
	room, err := s.repo.GetRoom(ctx, req.RoomUid)
	if err != nil {
		return model.BookingView{}, err
	}

	sel := schedule.NewSelection(s.policy, time.Now())
	if !sel.SelectDate(req.Date.Time) {
		if !s.policy.IsWorkingDay(req.Date.Time) {
			return model.BookingView{}, errs.ErrNotWorkingDay
		}
		return model.BookingView{}, errs.ErrDateTooSoon
	}
	if !room.AvailableSlots.Contains(req.Slot) {
		return model.BookingView{}, errs.ErrUnknownSlot
	}
	sel.SelectSlot(req.Slot)
	date, slot, err := sel.Submit()
	if err != nil {
		return model.BookingView{}, err
	}

	startTime, endTime, ok := strings.Cut(slot, "-")
	if !ok {
		return model.BookingView{}, errs.ErrUnknownSlot
	}

	booking, err := s.repo.CreateBooking(ctx, model.Booking{
		RoomID:    room.ID,
		RoomName:  room.Name,
		Capacity:  room.Capacity,
		UserEmail: req.UserEmail,
		Date:      model.Date{Time: date},
		StartTime: startTime,
		EndTime:   endTime,
		Status:    model.BookingPendingPayment,
	})
	if err != nil {
		return model.BookingView{}, err
	}

	s.enqueueBookingEvent(model.BookingEvent{
		BookingUid: booking.BookingUid,
		RoomUid:    room.RoomUid,
		UserEmail:  booking.UserEmail,
		Status:     booking.Status,
		Date:       booking.Date,
		Slot:       slot,
	})

	return model.BookingView{
		Booking:       booking,
		DisplayStatus: status.DeriveBooking(booking, time.Now()),
	}, nil
}

func (s *Service) CancelBooking(ctx context.Context, bookingUid, userEmail string) error {
	if err := s.repo.CancelBooking(ctx, bookingUid, userEmail); err != nil {
		return err
	}
	s.enqueueBookingEvent(model.BookingEvent{
		BookingUid: bookingUid,
		UserEmail:  userEmail,
		Status:     model.BookingCancelled,
	})
	return nil
}

func (s *Service) ConfirmPayment(ctx context.Context, bookingUid string) error {
	return s.repo.ConfirmPayment(ctx, bookingUid)
}

// ListLoans returns the caller's loans annotated for display, ordered by
// effective borrow date descending. An empty userEmail lists everyone's.
func (s *Service) ListLoans(ctx context.Context, userEmail string) ([]model.LoanView, error) {
	loans, err := s.repo.ListLoans(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]model.LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, newLoanView(l, now))
	}
	status.SortLoans(views)
	return views, nil
}

func (s *Service) GetLoan(ctx context.Context, loanUid, userEmail string) (model.LoanView, error) {
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return model.LoanView{}, err
	}
	if userEmail != "" && loan.UserEmail != userEmail {
		return model.LoanView{}, errs.ErrForbidden
	}
	return newLoanView(loan, time.Now()), nil
}

func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.LoanView, error) {
	borrowDate := time.Now()
	dueDate := borrowDate.AddDate(0, 0, loanDays)
	loan, err := s.repo.CreateLoan(ctx, req.BookUid, req.UserEmail, borrowDate, dueDate)
	if err != nil {
		return model.LoanView{}, err
	}
	return newLoanView(loan, time.Now()), nil
}

func (s *Service) ReturnLoan(ctx context.Context, loanUid, userEmail string) (model.LoanReturnResponse, error) {
	return s.repo.ReturnLoan(ctx, loanUid, userEmail)
}

func (s *Service) ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, showAll, page, size)
}

func (s *Service) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListAnnouncements(ctx)
}

func (s *Service) CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (model.Announcement, error) {
	return s.repo.CreateAnnouncement(ctx, req)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id int) error {
	return s.repo.DeleteAnnouncement(ctx, id)
}

func newLoanView(l model.Loan, now time.Time) model.LoanView {
	d := status.DeriveLoan(l, now)
	return model.LoanView{
		Loan:                l,
		DisplayStatus:       d.Status,
		EffectiveBorrowDate: model.Date{Time: d.EffectiveBorrowDate},
		IsOverdue:           d.IsOverdue,
	}
}

// enqueueBookingEvent publishes best-effort: a broker hiccup must not fail the
// user-facing call.
func (s *Service) enqueueBookingEvent(ev model.BookingEvent) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(kafka.BookingsTopic, ev); err != nil {
		s.log.Error("enqueue booking event", zap.Error(errors.Wrap(err, ev.BookingUid)))
	}
}
