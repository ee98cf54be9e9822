package model

import "time"

// Hall represents a physical banquet hall available for wedding
// events.  Each hall has a fixed table capacity and a fixed fee
// charged once per booking.  This struct corresponds to a row in
// the `halls` table.
//
// Fields:
//  ID               – primary key identifier.
//  Name             – human readable hall name.
//  Capacity         – maximum number of tables the hall can seat.
//  FeePerTableCents – fixed hall fee in cents, added once per booking.
//  Locked           – protected halls cannot be edited or deleted.
//  CreatedAt        – timestamp when the hall was created.
//  UpdatedAt        – timestamp of last update.
type Hall struct {
	ID               uint64    // halls.id
	Name             string    // halls.name
	Capacity         int       // halls.capacity
	FeePerTableCents int64     // halls.fee_per_table_cents
	Locked           bool      // halls.locked
	CreatedAt        time.Time // halls.created_at
	UpdatedAt        time.Time // halls.updated_at
}
