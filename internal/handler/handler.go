package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/readspace/library-portal/internal/errs"
	"github.com/readspace/library-portal/internal/model"
	"github.com/readspace/library-portal/pkg/auth"
	md "github.com/readspace/library-portal/pkg/middleware"
	"github.com/readspace/library-portal/pkg/validate"
)

type Handler struct {
	portalSvc PortalService
	log       *zap.Logger
}

func New(portalSvc PortalService, log *zap.Logger) *Handler {
	return &Handler{
		portalSvc: portalSvc,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/rooms", h.GetRooms)
	api.GET("/rooms/:roomUid", h.GetRoom)
	api.GET("/rooms/:roomUid/availability", h.GetRoomAvailability)
	api.GET("/rooms/:roomUid/slots", h.GetRoomSlots)

	api.GET("/books", h.GetBooks)
	api.GET("/announcements", h.GetAnnouncements)

	private := api.Group("", md.AuthContext)
	private.GET("/bookings", h.GetBookings)
	private.GET("/bookings/:bookingUid", h.GetBooking)
	private.POST("/bookings", h.CreateBooking)
	private.POST("/bookings/:bookingUid/cancel", h.CancelBooking)
	private.POST("/bookings/:bookingUid/pay", h.ConfirmPayment)

	private.GET("/loans", h.GetLoans)
	private.GET("/loans/:loanUid", h.GetLoan)
	private.POST("/loans", h.CreateLoan)
	private.POST("/loans/:loanUid/return", h.ReturnLoan)

	private.POST("/announcements", h.CreateAnnouncement)
	private.DELETE("/announcements/:id", h.DeleteAnnouncement)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetRooms(c echo.Context) error {
	rooms, err := h.portalSvc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c echo.Context) error {
	roomUid := c.Param("roomUid")
	room, err := h.portalSvc.GetRoom(c.Request().Context(), roomUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, room)
}

func (h *Handler) GetRoomAvailability(c echo.Context) error {
	roomUid := c.Param("roomUid")
	var (
		err   error
		year  int
		month int
	)
	if yearParam := c.QueryParam("year"); yearParam != "" {
		if year, err = strconv.Atoi(yearParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("year is invalid"))
		}
	}
	if monthParam := c.QueryParam("month"); monthParam != "" {
		if month, err = strconv.Atoi(monthParam); err != nil || month < 0 || month > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("month is invalid"))
		}
	}

	availability, err := h.portalSvc.RoomAvailability(c.Request().Context(), roomUid, year, time.Month(month))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, availability)
}

func (h *Handler) GetRoomSlots(c echo.Context) error {
	roomUid := c.Param("roomUid")
	date, err := time.Parse(time.DateOnly, c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("date is invalid"))
	}
	slots, err := h.portalSvc.RoomSlots(c.Request().Context(), roomUid, date)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, slots)
}

func (h *Handler) GetBookings(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	bookings, err := h.portalSvc.ListBookings(c.Request().Context(), userEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	bookingUid := c.Param("bookingUid")
	booking, err := h.portalSvc.GetBooking(c.Request().Context(), bookingUid, userEmail)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userEmail, err := auth.UserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.UserEmail = userEmail

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.portalSvc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrSlotTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, errs.ErrNotWorkingDay),
			errors.Is(err, errs.ErrDateTooSoon),
			errors.Is(err, errs.ErrUnknownSlot):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingUid is empty")
	}
	if err := h.portalSvc.CancelBooking(c.Request().Context(), bookingUid, userEmail); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ConfirmPayment(c echo.Context) error {
	if !auth.IsAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}
	bookingUid := c.Param("bookingUid")
	if err := h.portalSvc.ConfirmPayment(c.Request().Context(), bookingUid); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetLoans(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	loans, err := h.portalSvc.ListLoans(c.Request().Context(), userEmail)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetLoan(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	loanUid := c.Param("loanUid")
	loan, err := h.portalSvc.GetLoan(c.Request().Context(), loanUid, userEmail)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) CreateLoan(c echo.Context) error {
	if !auth.IsAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.portalSvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrNoCopies):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	userEmail, err := h.callerScope(c)
	if err != nil {
		return err
	}
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}
	resp, err := h.portalSvc.ReturnLoan(c.Request().Context(), loanUid, userEmail)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooks(c echo.Context) error {
	var (
		err     error
		page    int
		size    int
		showAll bool
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	if showAllParam := c.QueryParam("showAll"); showAllParam != "" {
		if showAll, err = strconv.ParseBool(showAllParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("showAll is invalid"))
		}
	}

	books, err := h.portalSvc.ListBooks(c.Request().Context(), showAll, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetAnnouncements(c echo.Context) error {
	items, err := h.portalSvc.ListAnnouncements(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAnnouncement(c echo.Context) error {
	if !auth.IsAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}
	var req model.CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.portalSvc.CreateAnnouncement(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) DeleteAnnouncement(c echo.Context) error {
	if !auth.IsAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	if err := h.portalSvc.DeleteAnnouncement(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// callerScope resolves the record filter for the caller: admins see every
// record (empty filter), everyone else only their own.
func (h *Handler) callerScope(c echo.Context) (string, error) {
	userEmail, err := auth.UserName(c)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if auth.IsAdmin(c) {
		return "", nil
	}
	return userEmail, nil
}
