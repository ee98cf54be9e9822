package model

import "time"

// Booking records a committed reservation of tables in a hall on a
// specific event date, together with the selected menu items and the
// total charged.  Bookings are created once and never edited or
// cancelled; the per-hall per-date sum of Tables across bookings
// must never exceed the hall's capacity.
//
// Fields:
//  ID         – primary key identifier (creation order is implicit in it).
//  CustomerID – customer the booking belongs to.
//  HallID     – hall reserved for the event.
//  EventDate  – calendar date of the event (date precision, stored UTC).
//  Tables     – number of tables reserved.
//  TotalCents – computed invoice total in cents.
//  Notes      – free-text notes entered by staff.
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         uint64    // bookings.id
	CustomerID uint64    // bookings.customer_id
	HallID     uint64    // bookings.hall_id
	EventDate  time.Time // bookings.event_date
	Tables     int       // bookings.tables
	TotalCents int64     // bookings.total_cents
	Notes      string    // bookings.notes
	CreatedAt  time.Time // bookings.created_at
}
