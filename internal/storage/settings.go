// ABOUTME: Singleton user settings access for SQLite storage.
// ABOUTME: The default row is created transactionally on first read.
package storage

import (
	"database/sql"
	"errors"

	"github.com/harperreed/glucolog/internal/models"
)

const settingsColumns = `units, notifications, dark_mode, email, first_name,
	last_name, diabetes_type, height_cm, target_low, target_high`

// Settings returns the singleton settings row, creating the default row
// inside a transaction if none exists yet.
func (d *DB) Settings() (*models.UserSettings, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, &StorageError{Op: "load settings", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	s, err := scanSettings(tx.QueryRow("SELECT " + settingsColumns + " FROM user_settings WHERE id = 1"))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, &StorageError{Op: "load settings", Err: err}
		}
		s = models.DefaultSettings()
		if err := insertSettings(tx, s); err != nil {
			return nil, &StorageError{Op: "create default settings", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &StorageError{Op: "load settings", Err: err}
	}
	return s, nil
}

// UpdateSettings merges only the supplied fields into the settings row.
// Unspecified fields are never reset.
func (d *DB) UpdateSettings(patch models.SettingsPatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &StorageError{Op: "update settings", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	s, err := scanSettings(tx.QueryRow("SELECT " + settingsColumns + " FROM user_settings WHERE id = 1"))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return &StorageError{Op: "update settings", Err: err}
		}
		s = models.DefaultSettings()
		if err := insertSettings(tx, s); err != nil {
			return &StorageError{Op: "create default settings", Err: err}
		}
	}

	if err := patch.Apply(s); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE user_settings SET units = ?, notifications = ?, dark_mode = ?,
			email = ?, first_name = ?, last_name = ?, diabetes_type = ?,
			height_cm = ?, target_low = ?, target_high = ?
		WHERE id = 1`,
		string(s.Units), s.Notifications, s.DarkMode, s.Email, s.FirstName,
		s.LastName, string(s.DiabetesType), s.HeightCm, s.TargetLow, s.TargetHigh)
	if err != nil {
		return &StorageError{Op: "update settings", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "update settings", Err: err}
	}
	return nil
}

func insertSettings(tx *sql.Tx, s *models.UserSettings) error {
	_, err := tx.Exec(`
		INSERT INTO user_settings (id, units, notifications, dark_mode, email,
			first_name, last_name, diabetes_type, height_cm, target_low, target_high)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(s.Units), s.Notifications, s.DarkMode, s.Email, s.FirstName,
		s.LastName, string(s.DiabetesType), s.HeightCm, s.TargetLow, s.TargetHigh)
	return err
}

func scanSettings(row *sql.Row) (*models.UserSettings, error) {
	var s models.UserSettings
	var units, diabetesType string

	err := row.Scan(&units, &s.Notifications, &s.DarkMode, &s.Email, &s.FirstName,
		&s.LastName, &diabetesType, &s.HeightCm, &s.TargetLow, &s.TargetHigh)
	if err != nil {
		return nil, err
	}
	s.Units = models.GlucoseUnits(units)
	s.DiabetesType = models.DiabetesType(diabetesType)
	return &s, nil
}
