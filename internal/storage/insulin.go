// ABOUTME: Insulin dose CRUD operations for SQLite storage.
// ABOUTME: Implements the Repository insulin methods.
package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

const insulinColumns = "id, units, insulin_type, recorded_at, notes, created_at"

// CreateInsulin validates and stores a new dose, returning the assigned id.
func (d *DB) CreateInsulin(dose *models.InsulinDose) (int64, error) {
	if err := dose.Validate(); err != nil {
		return 0, err
	}
	if dose.CreatedAt.IsZero() {
		dose.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO insulin_doses (units, insulin_type, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		dose.Units, string(dose.InsulinType), millis(dose.RecordedAt), dose.Notes, millis(dose.CreatedAt))
	if err != nil {
		return 0, &StorageError{Op: "create insulin dose", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "create insulin dose", Err: err}
	}
	dose.ID = id
	return id, nil
}

// ListInsulin returns up to limit most-recent doses (all if limit <= 0).
func (d *DB) ListInsulin(limit int) []*models.InsulinDose {
	query := "SELECT " + insulinColumns + " FROM insulin_doses ORDER BY recorded_at DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		readFailed("list insulin doses", err)
		return nil
	}
	defer rows.Close()

	return scanInsulinRows(rows)
}

// ListInsulinRange returns doses with start <= recorded_at <= end, ascending.
func (d *DB) ListInsulinRange(start, end time.Time) []*models.InsulinDose {
	rows, err := d.db.Query(`
		SELECT `+insulinColumns+` FROM insulin_doses
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC`,
		millis(start), millis(end))
	if err != nil {
		readFailed("list insulin doses in range", err)
		return nil
	}
	defer rows.Close()

	return scanInsulinRows(rows)
}

// UpdateInsulin applies only the supplied fields.
func (d *DB) UpdateInsulin(id int64, patch models.InsulinPatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update insulin dose", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	dose, err := scanInsulin(tx.QueryRow(
		"SELECT "+insulinColumns+" FROM insulin_doses WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Kind: models.KindInsulin, ID: id}
		}
		return &StorageError{Op: "update insulin dose", Err: err}
	}

	if err := patch.Apply(dose); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE insulin_doses SET units = ?, insulin_type = ?, notes = ? WHERE id = ?`,
		dose.Units, string(dose.InsulinType), dose.Notes, id)
	if err != nil {
		return &StorageError{Op: "update insulin dose", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update insulin dose", Err: err}
	}
	return nil
}

// DeleteInsulin removes a dose by id. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteInsulin(id int64) error {
	if _, err := d.db.Exec("DELETE FROM insulin_doses WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete insulin dose", Err: err}
	}
	return nil
}

func scanInsulin(row *sql.Row) (*models.InsulinDose, error) {
	var dose models.InsulinDose
	var recordedAt, createdAt int64
	var insulinType string
	var notes sql.NullString

	if err := row.Scan(&dose.ID, &dose.Units, &insulinType, &recordedAt, &notes, &createdAt); err != nil {
		return nil, err
	}
	dose.InsulinType = models.InsulinType(insulinType)
	dose.RecordedAt = fromMillis(recordedAt)
	dose.CreatedAt = fromMillis(createdAt)
	dose.Notes = notesPtr(notes)
	return &dose, nil
}

func scanInsulinRows(rows *sql.Rows) []*models.InsulinDose {
	var doses []*models.InsulinDose
	for rows.Next() {
		var dose models.InsulinDose
		var recordedAt, createdAt int64
		var insulinType string
		var notes sql.NullString

		if err := rows.Scan(&dose.ID, &dose.Units, &insulinType, &recordedAt, &notes, &createdAt); err != nil {
			readFailed("scan insulin dose", err)
			return nil
		}
		dose.InsulinType = models.InsulinType(insulinType)
		dose.RecordedAt = fromMillis(recordedAt)
		dose.CreatedAt = fromMillis(createdAt)
		dose.Notes = notesPtr(notes)
		doses = append(doses, &dose)
	}
	if err := rows.Err(); err != nil {
		readFailed("scan insulin doses", err)
		return nil
	}
	return doses
}
