// ABOUTME: Blood pressure reading CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository blood-pressure methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const bpColumns = "id, systolic, diastolic, recorded_at, notes, created_at"

// CreateBloodPressure validates and stores a new reading, returning the assigned id.
func (d *DB) CreateBloodPressure(b *models.BloodPressureReading) (int64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO blood_pressure_readings (systolic, diastolic, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.Systolic, b.Diastolic, millis(b.RecordedAt), b.Notes, millis(b.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create blood pressure reading", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create blood pressure reading", Err: err}
	}
	b.ID = id
	return id, nil
}

// ListBloodPressure returns up to limit most-recent readings (all if limit <= 0).
func (d *DB) ListBloodPressure(limit int) []*models.BloodPressureReading {
	query := "SELECT " + bpColumns + " FROM blood_pressure_readings ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list blood pressure readings", err)
		return nil
	}
	defer rows.Close()

	return scanBloodPressureRows(rows)
}

// ListBloodPressureRange returns readings with start <= recorded_at <= end, ascending.
func (d *DB) ListBloodPressureRange(start, end time.Time) []*models.BloodPressureReading {
	rows, err := d.db.Query(`
		SELECT `+bpColumns+` FROM blood_pressure_readings
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list blood pressure readings in range", err)
		return nil
	}
	defer rows.Close()

	return scanBloodPressureRows(rows)
}

// UpdateBloodPressure applies only the supplied fields.
func (d *DB) UpdateBloodPressure(id int64, patch models.BloodPressurePatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update blood pressure reading", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	b, err := scanBloodPressure(tx.QueryRow(
		"SELECT "+bpColumns+" FROM blood_pressure_readings WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindBloodPressure, ID: id}
		}
		return &StorageError{Op: "update blood pressure reading", Err: err}
	}

	if err := patch.Apply(b); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE blood_pressure_readings SET systolic = ?, diastolic = ?, notes = ? WHERE id = ?`,
		b.Systolic, b.Diastolic, b.Notes, id)
	if err != nil {
		return &StorageError{Op: "update blood pressure reading", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update blood pressure reading", Err: err}
	}
	return nil
}

// DeleteBloodPressure removes a reading by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteBloodPressure(id int64) error {
	if _, err := d.db.Exec("DELETE FROM blood_pressure_readings WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete blood pressure reading", Err: err}
	}
	return nil
}

func scanBloodPressure(row *sql.Row) (*models.BloodPressureReading, error) {
	var b models.BloodPressureReading
	var recordedAt, createdAt int64
	var notes sql.NullString

	if err := row.Scan(&b.ID, &b.Systolic, &b.Diastolic, &recordedAt, &notes, &createdAt); err != nil {
		return nil, err
	}
	b.RecordedAt = fromMillis(recordedAt)
	b.CreatedAt = fromMillis(createdAt)
	b.Notes = notesPtr(notes)
	return &b, nil
}

func scanBloodPressureRows(rows *sql.Rows) []*models.BloodPressureReading {
	var readings []*models.BloodPressureReading
	for rows.Next() {
		var b models.BloodPressureReading
		var recordedAt, createdAt int64
		var notes sql.NullString

		if err := rows.Scan(&b.ID, &b.Systolic, &b.Diastolic, &recordedAt, &notes, &createdAt); err != nil {
			readFailed("scan blood pressure reading", err)
			return nil
		}
		b.RecordedAt = fromMillis(recordedAt)
		b.CreatedAt = fromMillis(createdAt)
		b.Notes = notesPtr(notes)
		readings = append(readings, &b)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan blood pressure readings", err)
		return nil
	}
	return readings
}
