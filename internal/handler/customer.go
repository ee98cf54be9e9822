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

// CustomerHandler manages customer records.  Customers have no login;
// staff create them while taking a booking over the phone or at the
// venue desk.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

func NewCustomerHandler(customers *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Customers: customers}
}

type customerReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type customerResp struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func toCustomerResp(c model.Customer) customerResp {
	return customerResp{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
}

// List returns all customers.
func (h *CustomerHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	customers, err := h.Customers.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list customers failed"})
	}
	out := make([]customerResp, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResp(cust))
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": out})
}

// Get returns one customer.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toCustomerResp(*cust))
}

// Create registers a customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust := &model.Customer{Name: req.Name, Phone: strings.TrimSpace(req.Phone), Email: strings.TrimSpace(req.Email)}
	if err := h.Customers.Create(ctx, cust); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create customer failed"})
	}
	return c.JSON(http.StatusCreated, toCustomerResp(*cust))
}
