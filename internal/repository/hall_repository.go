package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// HallRepo provides methods to create, list and maintain banquet
// halls.  It embeds a database handle to perform queries and
// commands.
type HallRepo struct {
	db *sql.DB
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

const hallColumns = `id, name, capacity, fee_per_table_cents, locked, created_at, updated_at`

// List returns every hall ordered by name.
func (r *HallRepo) List(ctx context.Context) ([]model.Hall, error) {
	const q = `SELECT ` + hallColumns + ` FROM halls ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Hall, 0)
	for rows.Next() {
		var h model.Hall
		if err := rows.Scan(&h.ID, &h.Name, &h.Capacity, &h.FeePerTableCents, &h.Locked, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a hall by its ID.  It returns ErrHallNotFound
// when no row is found.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	const q = `SELECT ` + hallColumns + ` FROM halls WHERE id = ?`
	var h model.Hall
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.Capacity, &h.FeePerTableCents, &h.Locked, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Create inserts a new hall.  Name and Capacity must be validated by
// the caller.  After insert the record is read back so timestamps
// and defaults are populated on the provided struct.
func (r *HallRepo) Create(ctx context.Context, h *model.Hall) error {
	const qInsert = `INSERT INTO halls (name, capacity, fee_per_table_cents, locked) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, h.Name, h.Capacity, h.FeePerTableCents, h.Locked)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	const qSelect = `SELECT ` + hallColumns + ` FROM halls WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, h.ID).
		Scan(&h.ID, &h.Name, &h.Capacity, &h.FeePerTableCents, &h.Locked, &h.CreatedAt, &h.UpdatedAt)
}

// Update modifies a hall's name, capacity and fee.  Locked halls are
// protected seed data and reject the update with ErrHallLocked; the
// locked flag itself cannot be changed through this method.
func (r *HallRepo) Update(ctx context.Context, h *model.Hall) error {
	cur, err := r.GetByID(ctx, h.ID)
	if err != nil {
		return err
	}
	if cur.Locked {
		return ErrHallLocked
	}
	const q = `UPDATE halls
               SET name = ?, capacity = ?, fee_per_table_cents = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ? AND locked = FALSE`
	res, err := r.db.ExecContext(ctx, q, h.Name, h.Capacity, h.FeePerTableCents, h.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHallNotFound
	}
	return nil
}

// Delete removes a hall.  Locked halls reject the delete with
// ErrHallLocked; halls that already carry bookings reject it with
// ErrConflict so committed ledger history is never orphaned.
func (r *HallRepo) Delete(ctx context.Context, id uint64) error {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.Locked {
		return ErrHallLocked
	}
	var bookings int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE hall_id = ?`, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM halls WHERE id = ? AND locked = FALSE`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHallNotFound
	}
	return nil
}
