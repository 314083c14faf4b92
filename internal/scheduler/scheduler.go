package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-mission-bot/internal/clock"
	"telegram-mission-bot/internal/handlers"
	"telegram-mission-bot/internal/storage"
)

const reminderText = "Напоминание: пришлите отчёт и выполните миссию сегодня!"

// Scheduler fans daily reminders out to users whose configured HH:MM matches
// the current minute in the bot timezone.
type Scheduler struct {
	bot   handlers.Sender
	db    *storage.DB
	clock *clock.Clock

	lastFired map[int64]string // userID -> minute key of the last sent reminder
}

func New(bot handlers.Sender, db *storage.DB, clk *clock.Clock) *Scheduler {
	return &Scheduler{bot: bot, db: db, clock: clk, lastFired: make(map[int64]string)}
}

// Start registers the minute job and starts the gocron scheduler; the first
// tick runs immediately. Shut the returned scheduler down on exit.
func Start(bot handlers.Sender, db *storage.DB, clk *clock.Clock) (gocron.Scheduler, error) {
	sch := New(bot, db, clk)

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(sch.Tick),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}

// Tick is one pass over the reminder table. A read failure skips the whole
// tick; a delivery failure skips only that user and is not retried. The
// lastFired memo keeps a user from being notified twice inside one
// wall-clock minute; a minute missed because a tick slipped past its
// boundary is not caught up.
func (s *Scheduler) Tick() {
	reminders, err := s.db.ListReminders()
	if err != nil {
		log.Println("scheduler: list reminders:", err)
		return
	}

	now := s.clock.Now()
	hm := now.Format("15:04")
	minuteKey := now.Format("2006-01-02 15:04")

	for _, r := range reminders {
		if r.Time != hm || s.lastFired[r.UserID] == minuteKey {
			continue
		}
		s.lastFired[r.UserID] = minuteKey
		if _, err := s.bot.Send(tgbotapi.NewMessage(r.UserID, reminderText)); err != nil {
			log.Printf("scheduler: remind %d: %v", r.UserID, err)
		}
	}
}
