// ABOUTME: Weight measurement CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository weight methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const weightColumns = "id, value, recorded_at, notes, created_at"

// CreateWeight validates and stores a new measurement, returning the assigned id.
func (d *DB) CreateWeight(w *models.WeightMeasurement) (int64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO weight_measurements (value, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?)`,
		w.Value, millis(w.RecordedAt), w.Notes, millis(w.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create weight measurement", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create weight measurement", Err: err}
	}
	w.ID = id
	return id, nil
}

// ListWeight returns up to limit most-recent measurements (all if limit <= 0).
func (d *DB) ListWeight(limit int) []*models.WeightMeasurement {
	query := "SELECT " + weightColumns + " FROM weight_measurements ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list weight measurements", err)
		return nil
	}
	defer rows.Close()

	return scanWeightRows(rows)
}

// ListWeightRange returns measurements with start <= recorded_at <= end, ascending.
func (d *DB) ListWeightRange(start, end time.Time) []*models.WeightMeasurement {
	rows, err := d.db.Query(`
		SELECT `+weightColumns+` FROM weight_measurements
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list weight measurements in range", err)
		return nil
	}
	defer rows.Close()

	return scanWeightRows(rows)
}

// UpdateWeight applies only the supplied fields.
func (d *DB) UpdateWeight(id int64, patch models.WeightPatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update weight measurement", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	w, err := scanWeight(tx.QueryRow(
		"SELECT "+weightColumns+" FROM weight_measurements WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindWeight, ID: id}
		}
		return &StorageError{Op: "update weight measurement", Err: err}
	}

	if err := patch.Apply(w); err != nil {
		return err
	}

	_, err = tx.Exec("UPDATE weight_measurements SET value = ?, notes = ? WHERE id = ?",
		w.Value, w.Notes, id)
	if err != nil {
		return &StorageError{Op: "update weight measurement", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update weight measurement", Err: err}
	}
	return nil
}

// DeleteWeight removes a measurement by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteWeight(id int64) error {
	if _, err := d.db.Exec("DELETE FROM weight_measurements WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete weight measurement", Err: err}
	}
	return nil
}

func scanWeight(row *sql.Row) (*models.WeightMeasurement, error) {
	var w models.WeightMeasurement
	var recordedAt, createdAt int64
	var notes sql.NullString

	if err := row.Scan(&w.ID, &w.Value, &recordedAt, &notes, &createdAt); err != nil {
		return nil, err
	}
	w.RecordedAt = fromMillis(recordedAt)
	w.CreatedAt = fromMillis(createdAt)
	w.Notes = notesPtr(notes)
	return &w, nil
}

func scanWeightRows(rows *sql.Rows) []*models.WeightMeasurement {
	var measurements []*models.WeightMeasurement
	for rows.Next() {
		var w models.WeightMeasurement
		var recordedAt, createdAt int64
		var notes sql.NullString

		if err := rows.Scan(&w.ID, &w.Value, &recordedAt, &notes, &createdAt); err != nil {
			readFailed("scan weight measurement", err)
			return nil
		}
		w.RecordedAt = fromMillis(recordedAt)
		w.CreatedAt = fromMillis(createdAt)
		w.Notes = notesPtr(notes)
		measurements = append(measurements, &w)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan weight measurements", err)
		return nil
	}
	return measurements
}
