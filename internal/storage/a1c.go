// ABOUTME: A1C reading CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository A1C methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const a1cColumns = "id, value, recorded_at, notes, created_at"

// CreateA1C validates and stores a new reading, returning the assigned id.
func (d *DB) CreateA1C(a *models.A1CReading) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO a1c_readings (value, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?)`,
		a.Value, millis(a.RecordedAt), a.Notes, millis(a.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create a1c reading", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create a1c reading", Err: err}
	}
	a.ID = id
	return id, nil
}

// ListA1C returns up to limit most-recent readings (all if limit <= 0).
func (d *DB) ListA1C(limit int) []*models.A1CReading {
	query := "SELECT " + a1cColumns + " FROM a1c_readings ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list a1c readings", err)
		return nil
	}
	defer rows.Close()

	return scanA1CRows(rows)
}

// ListA1CRange returns readings with start <= recorded_at <= end, ascending.
func (d *DB) ListA1CRange(start, end time.Time) []*models.A1CReading {
	rows, err := d.db.Query(`
		SELECT `+a1cColumns+` FROM a1c_readings
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list a1c readings in range", err)
		return nil
	}
	defer rows.Close()

	return scanA1CRows(rows)
}

// UpdateA1C applies only the supplied fields.
func (d *DB) UpdateA1C(id int64, patch models.A1CPatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update a1c reading", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanA1C(tx.QueryRow(
		"SELECT "+a1cColumns+" FROM a1c_readings WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindA1C, ID: id}
		}
		return &StorageError{Op: "update a1c reading", Err: err}
	}

	if err := patch.Apply(a); err != nil {
		return err
	}

	_, err = tx.Exec("UPDATE a1c_readings SET value = ?, notes = ? WHERE id = ?",
		a.Value, a.Notes, id)
	if err != nil {
		return &StorageError{Op: "update a1c reading", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update a1c reading", Err: err}
	}
	return nil
}

// DeleteA1C removes a reading by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteA1C(id int64) error {
	if _, err := d.db.Exec("DELETE FROM a1c_readings WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete a1c reading", Err: err}
	}
	return nil
}

func scanA1C(row *sql.Row) (*models.A1CReading, error) {
	var a models.A1CReading
	var recordedAt, createdAt int64
	var notes sql.NullString

	if err := row.Scan(&a.ID, &a.Value, &recordedAt, &notes, &createdAt); err != nil {
		return nil, err
	}
	a.RecordedAt = fromMillis(recordedAt)
	a.CreatedAt = fromMillis(createdAt)
	a.Notes = notesPtr(notes)
	return &a, nil
}

func scanA1CRows(rows *sql.Rows) []*models.A1CReading {
	var readings []*models.A1CReading
	for rows.Next() {
		var a models.A1CReading
		var recordedAt, createdAt int64
		var notes sql.NullString

		if err := rows.Scan(&a.ID, &a.Value, &recordedAt, &notes, &createdAt); err != nil {
			readFailed("scan a1c reading", err)
			return nil
		}
		a.RecordedAt = fromMillis(recordedAt)
		a.CreatedAt = fromMillis(createdAt)
		a.Notes = notesPtr(notes)
		readings = append(readings, &a)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan a1c readings", err)
		return nil
	}
	return readings
}
