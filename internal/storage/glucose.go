// ABOUTME: Glucose reading CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository glucose methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const glucoseColumns = "id, value, recorded_at, context, notes, created_at"

// CreateGlucose validates and stores a new reading, returning the assigned id.
func (d *DB) CreateGlucose(g *models.GlucoseReading) (int64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO glucose_readings (value, recorded_at, context, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.Value, millis(g.RecordedAt), nullIfEmpty(string(g.Context)), g.Notes, millis(g.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create glucose reading", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create glucose reading", Err: err}
	}
	g.ID = id
	return id, nil
}

// ListGlucose returns up to limit most-recent readings (all if limit <= 0),
// ordered by recorded_at descending.
func (d *DB) ListGlucose(limit int) []*models.GlucoseReading {
	query := "SELECT " + glucoseColumns + " FROM glucose_readings ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list glucose readings", err)
		return nil
	}
	defer rows.Close()

	return scanGlucoseRows(rows)
}

// ListGlucoseRange returns readings with start <= recorded_at <= end,
// ordered by recorded_at ascending.
func (d *DB) ListGlucoseRange(start, end time.Time) []*models.GlucoseReading {
	rows, err := d.db.Query(`
		SELECT `+glucoseColumns+` FROM glucose_readings
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list glucose readings in range", err)
		return nil
	}
	defer rows.Close()

	return scanGlucoseRows(rows)
}

// UpdateGlucose applies only the supplied fields. The recorded_at timestamp
// is the record's identity anchor and is never touched.
func (d *DB) UpdateGlucose(id int64, patch models.GlucosePatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update glucose reading", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	g, err := scanGlucose(tx.QueryRow(
		"SELECT "+glucoseColumns+" FROM glucose_readings WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindGlucose, ID: id}
		}
		return &StorageError{Op: "update glucose reading", Err: err}
	}

	if err := patch.Apply(g); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE glucose_readings SET value = ?, context = ?, notes = ? WHERE id = ?`,
		g.Value, nullIfEmpty(string(g.Context)), g.Notes, id)
	if err != nil {
		return &StorageError{Op: "update glucose reading", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update glucose reading", Err: err}
	}
	return nil
}

// DeleteGlucose removes a reading by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteGlucose(id int64) error {
	if _, err := d.db.Exec("DELETE FROM glucose_readings WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete glucose reading", Err: err}
	}
	return nil
}

func scanGlucose(row *sql.Row) (*models.GlucoseReading, error) {
	var g models.GlucoseReading
	var recordedAt, createdAt int64
	var context, notes sql.NullString

	if err := row.Scan(&g.ID, &g.Value, &recordedAt, &context, &notes, &createdAt); err != nil {
		return nil, err
	}
	g.RecordedAt = fromMillis(recordedAt)
	g.CreatedAt = fromMillis(createdAt)
	g.Context = models.MealContext(stringOrEmpty(context))
	g.Notes = notesPtr(notes)
	return &g, nil
}

func scanGlucoseRows(rows *sql.Rows) []*models.GlucoseReading {
	var readings []*models.GlucoseReading
	for rows.Next() {
		var g models.GlucoseReading
		var recordedAt, createdAt int64
		var context, notes sql.NullString

		if err := rows.Scan(&g.ID, &g.Value, &recordedAt, &context, &notes, &createdAt); err != nil {
			readFailed("scan glucose reading", err)
			return nil
		}
		g.RecordedAt = fromMillis(recordedAt)
		g.CreatedAt = fromMillis(createdAt)
		g.Context = models.MealContext(stringOrEmpty(context))
		g.Notes = notesPtr(notes)
		readings = append(readings, &g)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan glucose readings", err)
		return nil
	}
	return readings
}
