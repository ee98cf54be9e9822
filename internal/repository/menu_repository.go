package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/wedding-venue-booking/internal/booking"
	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// MenuRepo provides CRUD operations for menu items and the combo
// component rows that document what a combo contains.  Component
// rows are authored alongside a combo and read by the booking engine
// for display decomposition only; pricing never touches them.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo returns a new MenuRepo bound to the given database.
func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

const menuColumns = `id, title, price_cents, kind, created_at, updated_at`

// List returns the full catalog ordered by kind then title, matching
// the order the booking form presents it in.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items ORDER BY kind, title`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MenuItem, 0)
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.PriceCents, &m.Kind, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a single menu item.  Returns ErrMenuItemNotFound
// when no row exists.
func (r *MenuRepo) GetByID(ctx context.Context, id uint64) (*model.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`
	var m model.MenuItem
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.PriceCents, &m.Kind, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListByIDs returns the menu items matching the given IDs.  The
// result preserves the request order and is shorter than the input
// when some IDs do not exist; callers decide whether missing IDs are
// an error.  An empty input returns an empty slice without touching
// the database.
func (r *MenuRepo) ListByIDs(ctx context.Context, ids []uint64) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}
	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	q := `SELECT ` + menuColumns + ` FROM menu_items WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[uint64]model.MenuItem, len(ids))
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.PriceCents, &m.Kind, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]model.MenuItem, 0, len(byID))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// Create inserts a menu item.  Kind defaults to "single" when empty.
func (r *MenuRepo) Create(ctx context.Context, m *model.MenuItem) error {
	if m.Kind == "" {
		m.Kind = model.KindSingle
	}
	const qInsert = `INSERT INTO menu_items (title, price_cents, kind) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, m.Title, m.PriceCents, m.Kind)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).
		Scan(&m.ID, &m.Title, &m.PriceCents, &m.Kind, &m.CreatedAt, &m.UpdatedAt)
}

// Update modifies title, price and kind of a menu item.
func (r *MenuRepo) Update(ctx context.Context, m *model.MenuItem) error {
	if m.Kind == "" {
		m.Kind = model.KindSingle
	}
	const q = `UPDATE menu_items
               SET title = ?, price_cents = ?, kind = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.PriceCents, m.Kind, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// Delete removes a menu item.  Items still referenced as a component
// of a combo reject the delete with ErrConflict so that authored
// combos do not silently lose their documented contents.  Note that
// historical bookings keep their booking_menu rows; those reference
// the item for reporting and do not block deletion in the source
// system either.
func (r *MenuRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM combo_items WHERE item_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	// Remove any component rows the item owned as a combo.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM combo_items WHERE combo_id = ?`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// ComponentsByCombo returns the component rows of a combo joined with
// their menu items, ordered by item title.  Rows whose menu item has
// been deleted survive the LEFT JOIN with a zero-ID item so the
// engine can flag the dangling reference instead of crashing on it.
func (r *MenuRepo) ComponentsByCombo(ctx context.Context, comboID uint64) ([]booking.Component, error) {
	const q = `SELECT ci.quantity,
                      COALESCE(m.id, 0), COALESCE(m.title, ''), COALESCE(m.price_cents, 0), COALESCE(m.kind, '')
               FROM combo_items ci
               LEFT JOIN menu_items m ON m.id = ci.item_id
               WHERE ci.combo_id = ?
               ORDER BY m.title`
	rows, err := r.db.QueryContext(ctx, q, comboID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]booking.Component, 0)
	for rows.Next() {
		var c booking.Component
		if err := rows.Scan(&c.Quantity, &c.Item.ID, &c.Item.Title, &c.Item.PriceCents, &c.Item.Kind); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceComponents rewrites the full component list of a combo in a
// single transaction.  Authoring replaces rather than patches: the
// incoming list is the complete intended contents.
func (r *MenuRepo) ReplaceComponents(ctx context.Context, comboID uint64, components []model.ComboComponent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM combo_items WHERE combo_id = ?`, comboID); err != nil {
		return err
	}
	if len(components) > 0 {
		query := `INSERT INTO combo_items (combo_id, item_id, quantity) VALUES `
		args := make([]interface{}, 0, len(components)*3)
		for i, c := range components {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?)"
			args = append(args, comboID, c.ItemID, c.Quantity)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
