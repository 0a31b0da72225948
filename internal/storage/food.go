// ABOUTME: Food entry CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository food methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const foodColumns = "id, name, carbs, recorded_at, meal_type, notes, created_at"

// CreateFood validates and stores a new food entry, returning the assigned id.
func (d *DB) CreateFood(f *models.FoodEntry) (int64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO food_entries (name, carbs, recorded_at, meal_type, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.Name, f.Carbs, millis(f.RecordedAt), string(f.MealType), f.Notes, millis(f.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create food entry", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create food entry", Err: err}
	}
	f.ID = id
	return id, nil
}

// ListFood returns up to limit most-recent entries (all if limit <= 0).
func (d *DB) ListFood(limit int) []*models.FoodEntry {
	query := "SELECT " + foodColumns + " FROM food_entries ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list food entries", err)
		return nil
	}
	defer rows.Close()

	return scanFoodRows(rows)
}

// ListFoodRange returns entries with start <= recorded_at <= end, ascending.
func (d *DB) ListFoodRange(start, end time.Time) []*models.FoodEntry {
	rows, err := d.db.Query(`
		SELECT `+foodColumns+` FROM food_entries
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list food entries in range", err)
		return nil
	}
	defer rows.Close()

	return scanFoodRows(rows)
}

// UpdateFood applies only the supplied fields.
func (d *DB) UpdateFood(id int64, patch models.FoodPatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update food entry", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	f, err := scanFood(tx.QueryRow(
		"SELECT "+foodColumns+" FROM food_entries WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindFood, ID: id}
		}
		return &StorageError{Op: "update food entry", Err: err}
	}

	if err := patch.Apply(f); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE food_entries SET name = ?, carbs = ?, meal_type = ?, notes = ? WHERE id = ?`,
		f.Name, f.Carbs, string(f.MealType), f.Notes, id)
	if err != nil {
		return &StorageError{Op: "update food entry", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update food entry", Err: err}
	}
	return nil
}

// DeleteFood removes an entry by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteFood(id int64) error {
	if _, err := d.db.Exec("DELETE FROM food_entries WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete food entry", Err: err}
	}
	return nil
}

func scanFood(row *sql.Row) (*models.FoodEntry, error) {
	var f models.FoodEntry
	var recordedAt, createdAt int64
	var carbs sql.NullFloat64
	var mealType string
	var notes sql.NullString

	if err := row.Scan(&f.ID, &f.Name, &carbs, &recordedAt, &mealType, &notes, &createdAt); err != nil {
		return nil, err
	}
	if carbs.Valid {
		f.Carbs = &carbs.Float64
	}
	f.RecordedAt = fromMillis(recordedAt)
	f.CreatedAt = fromMillis(createdAt)
	f.MealType = models.MealType(mealType)
	f.Notes = notesPtr(notes)
	return &f, nil
}

func scanFoodRows(rows *sql.Rows) []*models.FoodEntry {
	var entries []*models.FoodEntry
	for rows.Next() {
		var f models.FoodEntry
		var recordedAt, createdAt int64
		var carbs sql.NullFloat64
		var mealType string
		var notes sql.NullString

		if err := rows.Scan(&f.ID, &f.Name, &carbs, &recordedAt, &mealType, &notes, &createdAt); err != nil {
			readFailed("scan food entry", err)
			return nil
		}
		if carbs.Valid {
			f.Carbs = &carbs.Float64
		}
		f.RecordedAt = fromMillis(recordedAt)
		f.CreatedAt = fromMillis(createdAt)
		f.MealType = models.MealType(mealType)
		f.Notes = notesPtr(notes)
		entries = append(entries, &f)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan food entries", err)
		return nil
	}
	return entries
}
