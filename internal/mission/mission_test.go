package mission

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"telegram-mission-bot/internal/clock"
)

func TestForCoversWholeCycle(t *testing.T) {
	for i := 1; i <= 30; i++ {
		m := For(i)
		assert.True(t, strings.HasPrefix(m, fmt.Sprintf("День %d: ", i)), "index %d: %q", i, m)
	}
}

func TestForThemes(t *testing.T) {
	assert.Contains(t, For(1), "Наблюдение")
	assert.Contains(t, For(7), "Наблюдение")
	assert.Contains(t, For(8), "Память")
	assert.Contains(t, For(14), "Память")
	assert.Contains(t, For(15), "Коммуникация")
	assert.Contains(t, For(21), "Коммуникация")
	assert.Contains(t, For(22), "Стратегия")
	assert.Contains(t, For(30), "Стратегия")
}

func TestForPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { For(0) })
	assert.Panics(t, func() { For(31) })
}

func TestForDefinedForEveryDate(t *testing.T) {
	// walk a leap year so every day-of-month 1..31 occurs
	d := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == 2024 {
		assert.NotPanics(t, func() { For(clock.DayIndex(d)) }, "date %s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}
