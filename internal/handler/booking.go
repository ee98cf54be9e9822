package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wedding-venue-booking/internal/booking"
	"github.com/iliyamo/wedding-venue-booking/internal/config"
	"github.com/iliyamo/wedding-venue-booking/internal/model"
	"github.com/iliyamo/wedding-venue-booking/internal/queue"
	"github.com/iliyamo/wedding-venue-booking/internal/repository"
	queue_publisher "github.com/iliyamo/wedding-venue-booking/internal/service"
	"github.com/iliyamo/wedding-venue-booking/internal/utils"
)

// BookingHandler exposes availability lookups, price quotes and the
// booking commit path.  Admission rules live in the booking engine;
// this handler translates engine verdicts into HTTP responses and
// owns the transaction that makes the final capacity check and the
// insert atomic.
type BookingHandler struct {
	Cfg       config.Config
	Halls     *repository.HallRepo
	Customers *repository.CustomerRepo
	Menu      *repository.MenuRepo
	Bookings  *repository.BookingRepo
	Admission *booking.Admission
	Pricer    *booking.Pricer
}

func NewBookingHandler(
	cfg config.Config,
	halls *repository.HallRepo,
	customers *repository.CustomerRepo,
	menu *repository.MenuRepo,
	bookings *repository.BookingRepo,
	admission *booking.Admission,
	pricer *booking.Pricer,
) *BookingHandler {
	return &BookingHandler{
		Cfg: cfg, Halls: halls, Customers: customers, Menu: menu,
		Bookings: bookings, Admission: admission, Pricer: pricer,
	}
}

// ----- DTOs -----

type quoteReq struct {
	HallID      uint64   `json:"hall_id"`
	Tables      int      `json:"tables"`
	MenuItemIDs []uint64 `json:"menu_item_ids"`
}

type createBookingReq struct {
	CustomerID  uint64   `json:"customer_id"`
	HallID      uint64   `json:"hall_id"`
	EventDate   string   `json:"event_date"` // YYYY-MM-DD
	Tables      int      `json:"tables"`
	MenuItemIDs []uint64 `json:"menu_item_ids"`
	Notes       string   `json:"notes"`
}

type bookingResp struct {
	ID         uint64    `json:"id"`
	CustomerID uint64    `json:"customer_id"`
	HallID     uint64    `json:"hall_id"`
	EventDate  string    `json:"event_date"`
	Tables     int       `json:"tables"`
	TotalCents int64     `json:"total_cents"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

type hallAvailabilityResp struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Capacity         int    `json:"capacity"`
	FeePerTableCents int64  `json:"fee_per_table_cents"`
	Remaining        int    `json:"remaining"`
}

// Availability lists the halls that still have tables free on the
// requested date.  Fully booked halls are omitted; all_locked tells
// the client to put the whole booking form into read-only mode.
func (h *BookingHandler) Availability(c echo.Context) error {
	date, err := parseEventDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	av, err := h.Admission.Evaluate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "evaluate availability failed"})
	}

	halls := make([]hallAvailabilityResp, 0, len(av.Halls))
	for _, ha := range av.Halls {
		halls = append(halls, hallAvailabilityResp{
			ID:               ha.Hall.ID,
			Name:             ha.Hall.Name,
			Capacity:         ha.Hall.Capacity,
			FeePerTableCents: ha.Hall.FeePerTableCents,
			Remaining:        ha.Remaining,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":       date.Format("2006-01-02"),
		"halls":      halls,
		"all_locked": av.AllLocked,
	})
}

// Quote prices a prospective selection without touching the ledger.
// The response carries the total in cents, a formatted amount and the
// per-item breakdown with combos decomposed.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Tables <= 0 || req.Tables > h.Cfg.MaxTables {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table count"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, req.HallID)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	items, err := h.loadSelection(ctx, req.MenuItemIDs)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	total := h.Pricer.Total(*hall, req.Tables, items)
	breakdown, err := h.Pricer.DescribeSelection(ctx, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "describe selection failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"hall_id":         hall.ID,
		"tables":          req.Tables,
		"total_cents":     total,
		"total_formatted": utils.FormatCents(total),
		"breakdown":       breakdown.Text,
		"degraded":        breakdown.Degraded,
	})
}

// Create commits a booking.  The admission check runs twice: once
// against a plain ledger read for an early verdict, then again inside
// the insert transaction with the ledger rows locked, so two sessions
// racing for the last tables cannot both win.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	date, err := parseEventDate(req.EventDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_date must be YYYY-MM-DD"})
	}
	if req.Tables <= 0 || req.Tables > h.Cfg.MaxTables {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table count"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	customer, err := h.Customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	hall, err := h.Halls.GetByID(ctx, req.HallID)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	items, err := h.loadSelection(ctx, req.MenuItemIDs)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.Admission.Validate(ctx, *hall, date, req.Tables); err != nil {
		return admissionError(c, err)
	}

	total := h.Pricer.Total(*hall, req.Tables, items)
	breakdown, err := h.Pricer.DescribeSelection(ctx, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "describe selection failed"})
	}

	rec := &model.Booking{
		CustomerID: customer.ID,
		HallID:     hall.ID,
		EventDate:  date,
		Tables:     req.Tables,
		TotalCents: total,
		Notes:      strings.TrimSpace(req.Notes),
	}

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Re-check capacity with the ledger rows locked.
	booked, err := h.Bookings.TablesBookedTx(ctx, tx, hall.ID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ledger read failed"})
	}
	if remaining := hall.Capacity - booked; req.Tables > remaining {
		if remaining < 0 {
			remaining = 0
		}
		capErr := &booking.CapacityError{
			HallName:  hall.Name,
			Date:      date.Format("2006-01-02"),
			Capacity:  hall.Capacity,
			Remaining: remaining,
		}
		return c.JSON(http.StatusConflict, echo.Map{"error": capErr.Error()})
	}

	if err := h.Bookings.CreateTx(ctx, tx, rec, req.MenuItemIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	staffID, _ := getUserID(c)
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	event := queue.BookingCreatedEvent{
		BookingID:    rec.ID,
		StaffUserID:  staffID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		HallID:       hall.ID,
		HallName:     hall.Name,
		EventDate:    date.Format("2006-01-02"),
		Tables:       rec.Tables,
		MenuItems:    titles,
		TotalCents:   total,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": bookingResp{
			ID:         rec.ID,
			CustomerID: rec.CustomerID,
			HallID:     rec.HallID,
			EventDate:  date.Format("2006-01-02"),
			Tables:     rec.Tables,
			TotalCents: rec.TotalCents,
			Notes:      rec.Notes,
			CreatedAt:  rec.CreatedAt,
		},
		"total_cents":     total,
		"total_formatted": utils.FormatCents(total),
		"breakdown":       breakdown.Text,
		"degraded":        breakdown.Degraded,
	})
}

// List returns committed bookings, optionally filtered by hall and
// event date.
func (h *BookingHandler) List(c echo.Context) error {
	var f repository.ListFilter
	if v := c.QueryParam("hall_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall_id"})
		}
		f.HallID = id
	}
	if v := c.QueryParam("date"); v != "" {
		date, err := parseEventDate(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		f.Date = date
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	details, err := h.Bookings.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": details})
}

// loadSelection fetches the selected menu items and rejects IDs that
// do not exist.
func (h *BookingHandler) loadSelection(ctx context.Context, ids []uint64) ([]model.MenuItem, error) {
	items, err := h.Menu.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("load menu items failed")
	}
	if len(items) != len(ids) {
		return nil, errors.New("unknown menu item in selection")
	}
	return items, nil
}

// admissionError maps engine verdicts onto HTTP responses.  Capacity
// exhaustion is a conflict; everything else is a bad request.
func admissionError(c echo.Context, err error) error {
	var capErr *booking.CapacityError
	if errors.As(err, &capErr) {
		return c.JSON(http.StatusConflict, echo.Map{"error": capErr.Error()})
	}
	var tooFew *booking.TooFewTablesError
	var exceeds *booking.ExceedsCapacityError
	switch {
	case errors.Is(err, booking.ErrDateRequired),
		errors.Is(err, booking.ErrDateInPast),
		errors.As(err, &tooFew),
		errors.As(err, &exceeds):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "admission check failed"})
	}
}

// parseEventDate parses a YYYY-MM-DD date in UTC.
func parseEventDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
}
