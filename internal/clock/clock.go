// Package clock resolves the bot's local time and maps calendar dates onto
// the 30-day mission cycle.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

type Clock struct {
	loc *time.Location
	clk clockwork.Clock
}

func New(tz string, clk clockwork.Clock) (*Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("clock: timezone %q: %w", tz, err)
	}
	return &Clock{loc: loc, clk: clk}, nil
}

func (c *Clock) Now() time.Time { return c.clk.Now().In(c.loc) }

// DayIndex returns ((day-of-month - 1) mod 30) + 1. The cycle follows the
// calendar day, so the 31st wraps to 1; short months skip the tail indexes.
func DayIndex(t time.Time) int {
	return ((t.Day() - 1) % 30) + 1
}

// ParseHM validates a wall-clock "HH:MM" token, 0<=H<24 and 0<=M<60.
func ParseHM(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad time %q", s)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("bad time %q", s)
	}
	return h, m, nil
}
