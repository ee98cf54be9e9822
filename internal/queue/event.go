// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a wedding booking is
// committed.  It carries enough detail for downstream consumers to
// log, notify or feed analytics without querying the primary
// database.
type BookingCreatedEvent struct {
	BookingID    uint64   `json:"booking_id"`
	StaffUserID  uint64   `json:"staff_user_id"`
	CustomerID   uint64   `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	HallID       uint64   `json:"hall_id"`
	HallName     string   `json:"hall_name"`
	EventDate    string   `json:"event_date"`
	Tables       int      `json:"tables"`
	MenuItems    []string `json:"menu_items"`
	TotalCents   int64    `json:"total_cents"`
	CreatedAt    string   `json:"created_at"`
}
