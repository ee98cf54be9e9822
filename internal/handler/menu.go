package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wedding-venue-booking/internal/booking"
	"github.com/iliyamo/wedding-venue-booking/internal/model"
	"github.com/iliyamo/wedding-venue-booking/internal/repository"
)

// MenuHandler exposes the menu catalog: single dishes, combos and the
// component lists that document what a combo contains.
type MenuHandler struct {
	Menu    *repository.MenuRepo
	Catalog *booking.Catalog
}

func NewMenuHandler(menu *repository.MenuRepo, catalog *booking.Catalog) *MenuHandler {
	return &MenuHandler{Menu: menu, Catalog: catalog}
}

type menuItemReq struct {
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Kind       string `json:"kind"` // single | combo
}

type componentReq struct {
	ItemID   uint64 `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type menuItemResp struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Kind       string `json:"kind"`
}

func toMenuItemResp(m model.MenuItem) menuItemResp {
	return menuItemResp{ID: m.ID, Title: m.Title, PriceCents: m.PriceCents, Kind: m.Kind}
}

type componentResp struct {
	ItemID     uint64 `json:"item_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// List returns the full catalog.
func (h *MenuHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Menu.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list menu failed"})
	}
	out := make([]menuItemResp, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResp(item))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get returns one menu item.
func (h *MenuHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toMenuItemResp(*item))
}

// Create adds a menu item.  A combo's price is its flat charge; the
// component list is authored separately and never affects pricing.
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	item, errMsg := h.validated(req)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Menu.Create(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create menu item failed"})
	}
	return c.JSON(http.StatusCreated, toMenuItemResp(*item))
}

// Update edits a menu item.
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	item, errMsg := h.validated(req)
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
	}
	item.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Menu.Update(ctx, item); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update menu item failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// Delete removes a menu item unless a combo still references it.
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Menu.Delete(ctx, id); err != nil {
		switch err {
		case repository.ErrMenuItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "item is part of a combo"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete menu item failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Components resolves the contents of a combo for display.  When a
// component row points at a deleted item the remaining components are
// still returned and the payload is flagged as degraded.
func (h *MenuHandler) Components(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	components, err := h.Catalog.ResolveComponents(ctx, *item)
	degraded := false
	if err != nil {
		var inc *booking.InconsistencyError
		switch {
		case errors.Is(err, booking.ErrNotCombo):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "item is not a combo"})
		case errors.Is(err, booking.ErrNestedCombo):
			return c.JSON(http.StatusConflict, echo.Map{"error": "combo contains another combo"})
		case errors.As(err, &inc):
			degraded = true
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "resolve components failed"})
		}
	}

	out := make([]componentResp, 0, len(components))
	for _, comp := range components {
		out = append(out, componentResp{
			ItemID:     comp.Item.ID,
			Title:      comp.Item.Title,
			PriceCents: comp.Item.PriceCents,
			Quantity:   comp.Quantity,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"combo_id": id, "components": out, "degraded": degraded})
}

// ReplaceComponents rewrites a combo's component list.  The target
// must be a combo, every component must exist and components must be
// single items; combos never nest.
func (h *MenuHandler) ReplaceComponents(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var reqs []componentReq
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	combo, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !combo.IsCombo() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item is not a combo"})
	}

	components := make([]model.ComboComponent, 0, len(reqs))
	for _, req := range reqs {
		if req.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
		}
		item, err := h.Menu.GetByID(ctx, req.ItemID)
		if err != nil {
			if err == repository.ErrMenuItemNotFound {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "component item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		if item.IsCombo() {
			return c.JSON(http.StatusConflict, echo.Map{"error": "combos cannot contain combos"})
		}
		components = append(components, model.ComboComponent{ComboID: id, ItemID: req.ItemID, Quantity: req.Quantity})
	}

	if err := h.Menu.ReplaceComponents(ctx, id, components); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save components failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"combo_id": id, "components": len(components)})
}

// validated normalizes and checks a menu item payload.
func (h *MenuHandler) validated(req menuItemReq) (*model.MenuItem, string) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, "title required"
	}
	if req.PriceCents < 0 {
		return nil, "price must not be negative"
	}
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	switch kind {
	case "":
		kind = model.KindSingle
	case model.KindSingle, model.KindCombo:
	default:
		return nil, "kind must be single or combo"
	}
	return &model.MenuItem{Title: title, PriceCents: req.PriceCents, Kind: kind}, ""
}
