// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Six independent record tables plus the singleton user_settings row.
package storage

// initSchema creates or updates the database schema.
// Timestamps are epoch milliseconds. The six record tables are independent
// logs correlated only by timestamp; there are no foreign keys between kinds.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS glucose_readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value REAL NOT NULL,
		recorded_at INTEGER NOT NULL,
		context TEXT,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS food_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		carbs REAL,
		recorded_at INTEGER NOT NULL,
		meal_type TEXT NOT NULL,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS insulin_doses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		units REAL NOT NULL,
		insulin_type TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS a1c_readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value REAL NOT NULL,
		recorded_at INTEGER NOT NULL,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weight_measurements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value REAL NOT NULL,
		recorded_at INTEGER NOT NULL,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS blood_pressure_readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		systolic INTEGER NOT NULL,
		diastolic INTEGER NOT NULL,
		recorded_at INTEGER NOT NULL,
		notes TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		units TEXT NOT NULL,
		notifications INTEGER NOT NULL,
		dark_mode INTEGER NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		diabetes_type TEXT NOT NULL DEFAULT '',
		height_cm REAL NOT NULL DEFAULT 0,
		target_low REAL NOT NULL,
		target_high REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_glucose_recorded ON glucose_readings(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_food_recorded ON food_entries(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_insulin_recorded ON insulin_doses(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_a1c_recorded ON a1c_readings(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_weight_recorded ON weight_measurements(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_bp_recorded ON blood_pressure_readings(recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
