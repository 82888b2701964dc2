package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-portal/internal/errs"
	"github.com/readspace/library-portal/internal/model"
)

type Repository interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	GetRoom(ctx context.Context, roomUid string) (model.Room, error)

	ListBookings(ctx context.Context, userEmail string) ([]model.Booking, error)
	GetBooking(ctx context.Context, bookingUid string) (model.Booking, error)
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	CancelBooking(ctx context.Context, bookingUid, userEmail string) error
	ConfirmPayment(ctx context.Context, bookingUid string) error

	ListLoans(ctx context.Context, userEmail string) ([]model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	CreateLoan(ctx context.Context, bookUid, userEmail string, borrowDate, dueDate time.Time) (model.Loan, error)
	ReturnLoan(ctx context.Context, loanUid, userEmail string) (model.LoanReturnResponse, error)

	ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error)

	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	roomsTableName         = `rooms`
	bookingsTableName      = `bookings`
	booksTableName         = `books`
	loansTableName         = `loans`
	announcementsTableName = `announcements`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) ListRooms(ctx context.Context) ([]model.Room, error) {
	q, args, err := qb.Select("id", "room_uid", "name", "capacity", "available_slots", "status").
		From(roomsTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rooms []model.Room
	if err := r.db.SelectContext(ctx, &rooms, q, args...); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *repository) GetRoom(ctx context.Context, roomUid string) (model.Room, error) {
	q, args, err := qb.Select("id", "room_uid", "name", "capacity", "available_slots", "status").
		From(roomsTableName).
		Where(sq.Eq{"room_uid": roomUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}
	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) ListBookings(ctx context.Context, userEmail string) ([]model.Booking, error) {
	q := qb.Select("b.id", "booking_uid", "room_id", "r.name as room_name", "r.capacity",
		"user_email", "date", "start_time", "end_time", "b.status", "cancelled_at").
		From(bookingsTableName + " b").
		Join(roomsTableName + " r on r.id = b.room_id")

	if userEmail != "" {
		q = q.Where(sq.Eq{"user_email": userEmail})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) GetBooking(ctx context.Context, bookingUid string) (model.Booking, error) {
	query, args, err := qb.Select("b.id", "booking_uid", "room_id", "r.name as room_name", "r.capacity",
		"user_email", "date", "start_time", "end_time", "b.status", "cancelled_at").
		From(bookingsTableName + " b").
		Join(roomsTableName + " r on r.id = b.room_id").
		Where(sq.Eq{"booking_uid": bookingUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	booking.BookingUid = uuid.NewString()
	q, args, err := qb.Insert(bookingsTableName).
		Columns("booking_uid", "room_id", "user_email", "date", "start_time", "end_time", "status").
		Values(booking.BookingUid, booking.RoomID, booking.UserEmail, booking.Date, booking.StartTime, booking.EndTime, booking.Status).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	if err := r.db.GetContext(ctx, &booking.ID, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Booking{}, errs.ErrSlotTaken
		}
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *repository) CancelBooking(ctx context.Context, bookingUid, userEmail string) error {
	q := `update bookings
	set status = 'cancelled', cancelled_at = now()
	where booking_uid = $1 and ($2 = '' or user_email = $2)
	  and status in ('confirmed', 'pending_payment')`

	res, err := r.db.ExecContext(ctx, q, bookingUid, userEmail)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ConfirmPayment(ctx context.Context, bookingUid string) error {
	q := `update bookings
	set status = 'confirmed'
	where booking_uid = $1 and status = 'pending_payment'`

	res, err := r.db.ExecContext(ctx, q, bookingUid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListLoans(ctx context.Context, userEmail string) ([]model.Loan, error) {
	q := qb.Select("l.id", "loan_uid", "book_id", "b.title as book_title", "b.author as book_author",
		"user_email", "borrow_date", "due_date", "return_date", "l.status", "fine_amount").
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id")

	if userEmail != "" {
		q = q.Where(sq.Eq{"user_email": userEmail})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	query, args, err := qb.Select("l.id", "loan_uid", "book_id", "b.title as book_title", "b.author as book_author",
		"user_email", "borrow_date", "due_date", "return_date", "l.status", "fine_amount").
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Where(sq.Eq{"loan_uid": loanUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) CreateLoan(ctx context.Context, bookUid, userEmail string, borrowDate, dueDate time.Time) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var book model.Book
	getBook := `select id, book_uid, title, author, genre, available_count
	from books where book_uid = $1 for update`
	if err := tx.GetContext(ctx, &book, getBook, bookUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	if book.AvailableCount <= 0 {
		return model.Loan{}, errs.ErrNoCopies
	}

	if _, err := tx.ExecContext(ctx,
		`update books set available_count = available_count - 1 where id = $1`, book.ID); err != nil {
		return model.Loan{}, err
	}

	loan := model.Loan{
		LoanUid:    uuid.NewString(),
		BookID:     book.ID,
		BookTitle:  book.Title,
		BookAuthor: book.Author,
		UserEmail:  userEmail,
		BorrowDate: &borrowDate,
		DueDate:    &dueDate,
		Status:     model.LoanBorrowed,
	}
	q, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "book_id", "user_email", "borrow_date", "due_date", "status").
		Values(loan.LoanUid, loan.BookID, loan.UserEmail, loan.BorrowDate, loan.DueDate, loan.Status).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	if err := tx.GetContext(ctx, &loan.ID, q, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.Loan{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

const lateFinePerDay = 0.50

func (r *repository) ReturnLoan(ctx context.Context, loanUid, userEmail string) (model.LoanReturnResponse, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.LoanReturnResponse{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `update loans
	set status = case when current_date > due_date::date then 'late' else 'returned' end,
	    return_date = now(),
	    fine_amount = case when current_date > due_date::date
	        then (current_date - due_date::date) * $3 end
	where loan_uid = $1 and ($2 = '' or user_email = $2) and status = 'borrowed'
	returning loan_uid, book_id, status, fine_amount`

	var (
		resp   model.LoanReturnResponse
		bookID int
	)
	err = tx.QueryRowContext(ctx, q, loanUid, userEmail, lateFinePerDay).
		Scan(&resp.LoanUid, &bookID, &resp.Status, &resp.FineAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanReturnResponse{}, errs.ErrNotFound
		}
		return model.LoanReturnResponse{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`update books set available_count = available_count + 1 where id = $1`, bookID); err != nil {
		return model.LoanReturnResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.LoanReturnResponse{}, err
	}
	return resp, nil
}

func (r *repository) ListBooks(ctx context.Context, showAll bool, page, size int) (model.ListBooks, error) {
	q := qb.Select("book_uid", "title", "author", "genre", "available_count").
		From(booksTableName)

	if !showAll {
		q = q.Where(sq.Gt{"available_count": 0})
	}
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	q, args, err := qb.Select("id", "title", "body", "created_at").
		From(announcementsTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Announcement
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (model.Announcement, error) {
	q, args, err := qb.Insert(announcementsTableName).
		Columns("title", "body").
		Values(req.Title, req.Body).
		Suffix("returning id, title, body, created_at").
		ToSql()
	if err != nil {
		return model.Announcement{}, err
	}
	var a model.Announcement
	if err := r.db.GetContext(ctx, &a, q, args...); err != nil {
		return model.Announcement{}, err
	}
	return a, nil
}

func (r *repository) DeleteAnnouncement(ctx context.Context, id int) error {
	q, args, err := qb.Delete(announcementsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}
