// Package export mirrors every stored report into a flat CSV file so the
// data stays inspectable and restorable outside sqlite. Mirroring is best
// effort: callers log a failed append and never fail the primary write.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"telegram-mission-bot/internal/models"
)

var header = []string{"id", "user_id", "username", "ts", "local_date", "day_index", "text"}

type Writer struct {
	mu   sync.Mutex
	path string
}

func NewWriter(path string) *Writer { return &Writer{path: path} }

func (w *Writer) Path() string { return w.path }

// Append writes one report row, creating the file with a header row first.
func (w *Writer) Append(r *models.Report) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	_, statErr := os.Stat(w.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if writeHeader {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	// id column stays empty, matching the historical backup format
	rec := []string{
		"",
		strconv.FormatInt(r.UserID, 10),
		r.Username,
		r.TS,
		r.LocalDate,
		strconv.Itoa(r.DayIndex),
		r.Text,
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
