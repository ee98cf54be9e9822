package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// BookingRepo provides the capacity-ledger aggregation and the
// transactional insert used when committing a booking.  Bookings
// group a customer, a hall, an event date, a table count and the
// selected menu items; selections are stored in the booking_menu
// join table.  Event dates are stored as DATE columns in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open the
// transaction that spans the capacity re-check and the insert.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// TablesBooked returns the sum of tables across all bookings for the
// hall on the given event date.  This is the ledger read used during
// availability evaluation and the preliminary admission check.
func (r *BookingRepo) TablesBooked(ctx context.Context, hallID uint64, date time.Time) (int, error) {
	const q = `SELECT COALESCE(SUM(tables), 0) FROM bookings WHERE hall_id = ? AND event_date = ?`
	var total int
	err := r.db.QueryRowContext(ctx, q, hallID, date.Format("2006-01-02")).Scan(&total)
	return total, err
}

// TablesBookedTx is the transactional variant of TablesBooked.  It
// locks the matching booking rows for the duration of the transaction
// so two sessions racing for the last tables serialize: the second
// one re-reads a sum that already includes the first one's insert.
func (r *BookingRepo) TablesBookedTx(ctx context.Context, tx *sql.Tx, hallID uint64, date time.Time) (int, error) {
	const q = `SELECT COALESCE(SUM(tables), 0) FROM bookings WHERE hall_id = ? AND event_date = ? FOR UPDATE`
	var total int
	err := tx.QueryRowContext(ctx, q, hallID, date.Format("2006-01-02")).Scan(&total)
	return total, err
}

// CreateTx inserts a booking and its menu selections within the
// scope of an existing transaction.  It populates the generated ID
// and CreatedAt on the provided record.  The caller must commit or
// rollback the transaction; the capacity comparison against
// TablesBookedTx must happen inside the same transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking, itemIDs []uint64) error {
	const q = `INSERT INTO bookings (customer_id, hall_id, event_date, tables, total_cents, notes) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.CustomerID, b.HallID, b.EventDate.Format("2006-01-02"), b.Tables, b.TotalCents, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	if len(itemIDs) > 0 {
		query := `INSERT INTO booking_menu (booking_id, menu_item_id) VALUES `
		args := make([]interface{}, 0, len(itemIDs)*2)
		for i, itemID := range itemIDs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?)"
			args = append(args, b.ID, itemID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt)
}

// BookingDetail carries a booking together with the customer, hall
// and menu selection details needed for invoice listings.
type BookingDetail struct {
	ID           uint64     `json:"id"`
	EventDate    string     `json:"event_date"`
	Tables       int        `json:"tables"`
	TotalCents   int64      `json:"total_cents"`
	Notes        string     `json:"notes"`
	CustomerID   uint64     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	HallID       uint64     `json:"hall_id"`
	HallName     string     `json:"hall_name"`
	CreatedAt    time.Time  `json:"created_at"`
	MenuItems    []MenuLine `json:"menu_items"`
}

// MenuLine is one selected menu item on a booking.
type MenuLine struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Kind       string `json:"kind"`
}

// ListFilter narrows a booking listing.  Zero values mean "no
// filter" for that dimension.
type ListFilter struct {
	HallID uint64
	Date   time.Time
}

// List returns bookings joined with customer and hall details,
// newest first, optionally filtered by hall and event date.  Menu
// selections are populated with a second query over booking_menu so
// the main result stays one row per booking.
func (r *BookingRepo) List(ctx context.Context, f ListFilter) ([]BookingDetail, error) {
	q := `SELECT b.id, b.event_date, b.tables, b.total_cents, b.notes, b.created_at,
                 c.id, c.name, h.id, h.name
          FROM bookings b
          JOIN customers c ON c.id = b.customer_id
          JOIN halls h ON h.id = b.hall_id`
	var where []string
	var args []interface{}
	if f.HallID != 0 {
		where = append(where, "b.hall_id = ?")
		args = append(args, f.HallID)
	}
	if !f.Date.IsZero() {
		where = append(where, "b.event_date = ?")
		args = append(args, f.Date.Format("2006-01-02"))
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY b.event_date DESC, b.id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]BookingDetail, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var d BookingDetail
		var eventDate time.Time
		if err := rows.Scan(
			&d.ID, &eventDate, &d.Tables, &d.TotalCents, &d.Notes, &d.CreatedAt,
			&d.CustomerID, &d.CustomerName, &d.HallID, &d.HallName,
		); err != nil {
			return nil, err
		}
		d.EventDate = eventDate.Format("2006-01-02")
		d.MenuItems = []MenuLine{}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	// Populate menu selections for all bookings in a single query.
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
	}
	menuQuery := `SELECT bm.booking_id, m.id, m.title, m.price_cents, m.kind
                  FROM booking_menu bm
                  JOIN menu_items m ON m.id = bm.menu_item_id
                  WHERE bm.booking_id IN (` + strings.Join(placeholders, ",") + `)
                  ORDER BY bm.booking_id, m.kind, m.title`
	mrows, err := r.db.QueryContext(ctx, menuQuery, ids...)
	if err != nil {
		return nil, err
	}
	defer mrows.Close()
	for mrows.Next() {
		var bookingID uint64
		var line MenuLine
		if err := mrows.Scan(&bookingID, &line.ID, &line.Title, &line.PriceCents, &line.Kind); err != nil {
			return nil, err
		}
		idx, ok := index[bookingID]
		if !ok {
			continue
		}
		details[idx].MenuItems = append(details[idx].MenuItems, line)
	}
	if err := mrows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
