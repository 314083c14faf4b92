package storage

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"telegram-mission-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- reports ---------------------------------------------------------

// AppendReport durably persists r and returns the assigned id (also set on
// r). The insert runs in a transaction, so a concurrent reader never sees a
// partial row. Callers must not confirm the report to the user on error.
func (d *DB) AppendReport(r *models.Report) (int64, error) {
	tx, err := d.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
        INSERT INTO reports (user_id, username, ts, local_date, day_index, text)
        VALUES (?,?,?,?,?,?)
    `, r.UserID, r.Username, r.TS, r.LocalDate, r.DayIndex, r.Text)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.ID = id
	return id, nil
}

// DistinctReportDates returns the distinct local dates carrying at least one
// report by the user since the given date (inclusive), sorted ascending.
func (d *DB) DistinctReportDates(userID int64, since string) ([]string, error) {
	rows, err := d.Query(`
        SELECT DISTINCT local_date FROM reports
        WHERE user_id=? AND local_date>=?
        ORDER BY local_date`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		res = append(res, day)
	}
	return res, rows.Err()
}

// ---------- reminders -------------------------------------------------------

// UpsertReminder replaces the user's reminder time, keeping at most one row
// per user. hm is already validated and zero-padded by the caller.
func (d *DB) UpsertReminder(userID int64, hm string) error {
	_, err := d.Exec(`
        INSERT INTO reminders (user_id, reminder_time) VALUES (?,?)
        ON CONFLICT(user_id) DO UPDATE SET reminder_time=excluded.reminder_time
    `, userID, hm)
	return err
}

func (d *DB) ListReminders() ([]models.Reminder, error) {
	rows, err := d.Query(`SELECT user_id, reminder_time FROM reminders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.UserID, &r.Time); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
