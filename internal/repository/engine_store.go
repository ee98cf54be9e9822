package repository

import (
	"context"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/booking"
	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// EngineStore adapts the SQL repositories to the booking.Store
// interface consumed by the admission and pricing engine.
type EngineStore struct {
	Halls    *HallRepo
	Menu     *MenuRepo
	Bookings *BookingRepo
}

// NewEngineStore bundles the repositories the engine reads from.
func NewEngineStore(halls *HallRepo, menu *MenuRepo, bookings *BookingRepo) *EngineStore {
	if halls == nil || menu == nil || bookings == nil {
		panic("nil repository passed to NewEngineStore")
	}
	return &EngineStore{Halls: halls, Menu: menu, Bookings: bookings}
}

func (s *EngineStore) ListHalls(ctx context.Context) ([]model.Hall, error) {
	return s.Halls.List(ctx)
}

func (s *EngineStore) TablesBooked(ctx context.Context, hallID uint64, date time.Time) (int, error) {
	return s.Bookings.TablesBooked(ctx, hallID, date)
}

func (s *EngineStore) ComboComponents(ctx context.Context, comboID uint64) ([]booking.Component, error) {
	return s.Menu.ComponentsByCombo(ctx, comboID)
}
