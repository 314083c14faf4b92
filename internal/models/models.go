package models

// Report is a single submitted progress report. Rows are append-only: once
// the store assigns the id, the row is never mutated or deleted.
type Report struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	Username  string `db:"username"`   // display name, may be empty
	TS        string `db:"ts"`         // RFC3339, bot-local time
	LocalDate string `db:"local_date"` // YYYY-MM-DD
	DayIndex  int    `db:"day_index"`  // 1..30 mission cycle position
	Text      string `db:"text"`
}

// Reminder maps a user to a daily wall-clock notification time, one row per
// user (last /setreminder wins).
type Reminder struct {
	UserID int64  `db:"user_id"`
	Time   string `db:"reminder_time"` // "HH:MM" in the bot timezone
}
