package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
	"github.com/iliyamo/wedding-venue-booking/internal/repository"
)

// HallHandler exposes hall management.  Listing is open to all staff;
// mutations are restricted to ADMIN by the router.
type HallHandler struct {
	Halls *repository.HallRepo
}

func NewHallHandler(halls *repository.HallRepo) *HallHandler {
	return &HallHandler{Halls: halls}
}

type hallReq struct {
	Name             string `json:"name"`
	Capacity         int    `json:"capacity"`
	FeePerTableCents int64  `json:"fee_per_table_cents"`
}

type hallResp struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Capacity         int       `json:"capacity"`
	FeePerTableCents int64     `json:"fee_per_table_cents"`
	Locked           bool      `json:"locked"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toHallResp(h model.Hall) hallResp {
	return hallResp{
		ID:               h.ID,
		Name:             h.Name,
		Capacity:         h.Capacity,
		FeePerTableCents: h.FeePerTableCents,
		Locked:           h.Locked,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

// List returns every hall with its configuration.
func (h *HallHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	halls, err := h.Halls.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list halls failed"})
	}
	out := make([]hallResp, 0, len(halls))
	for _, hall := range halls {
		out = append(out, toHallResp(hall))
	}
	return c.JSON(http.StatusOK, echo.Map{"halls": out})
}

// Get returns one hall by ID.
func (h *HallHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toHallResp(*hall))
}

// Create adds a new hall.
func (h *HallHandler) Create(c echo.Context) error {
	var req hallReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	if req.Capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be positive"})
	}
	if req.FeePerTableCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fee must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall := &model.Hall{Name: req.Name, Capacity: req.Capacity, FeePerTableCents: req.FeePerTableCents}
	if err := h.Halls.Create(ctx, hall); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create hall failed"})
	}
	return c.JSON(http.StatusCreated, toHallResp(*hall))
}

// Update edits a hall's name, capacity or per-table fee.  Locked
// halls are seed data and respond 409.
func (h *HallHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hallReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Capacity <= 0 || req.FeePerTableCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, positive capacity and non-negative fee required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall := &model.Hall{ID: id, Name: req.Name, Capacity: req.Capacity, FeePerTableCents: req.FeePerTableCents}
	if err := h.Halls.Update(ctx, hall); err != nil {
		switch err {
		case repository.ErrHallNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		case repository.ErrHallLocked:
			return c.JSON(http.StatusConflict, echo.Map{"error": "hall is locked"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update hall failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// Delete removes a hall unless it is locked or has bookings.
func (h *HallHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Halls.Delete(ctx, id); err != nil {
		switch err {
		case repository.ErrHallNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		case repository.ErrHallLocked:
			return c.JSON(http.StatusConflict, echo.Map{"error": "hall is locked"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "hall has bookings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete hall failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
