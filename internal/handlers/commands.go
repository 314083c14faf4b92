package handlers

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-mission-bot/internal/clock"
	"telegram-mission-bot/internal/mission"
	"telegram-mission-bot/internal/models"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		h.handleStart(chatID, msg)
	case "report":
		h.handleReport(chatID)
	case "cancel":
		h.handleCancel(chatID)
	case "mission":
		h.handleMission(chatID)
	case "progress":
		h.handleProgress(chatID)
	case "setreminder":
		h.handleSetReminder(chatID, msg.CommandArguments())
	}
}

// ---------------- /start --------------------

func (h *Handler) handleStart(chatID int64, msg *tgbotapi.Message) {
	log.Printf("/start from %s", username(msg))
	h.send(chatID, textStart)
}

// ---------------- /report, /cancel ----------

func (h *Handler) handleReport(chatID int64) {
	// re-entry mid-conversation just repeats the prompt
	h.Conv.Set(chatID, models.StateAwaitingReport)
	h.send(chatID, textAskReport)
}

func (h *Handler) handleCancel(chatID int64) {
	if h.Conv.Get(chatID) != models.StateAwaitingReport {
		return
	}
	h.Conv.Set(chatID, models.StateIdle)
	h.send(chatID, textReportCanceled)
}

// ---------------- /mission ------------------

func (h *Handler) handleMission(chatID int64) {
	now := h.Clock.Now()
	h.send(chatID, fmt.Sprintf("Миссия на %s:\n%s",
		now.Format("2006-01-02"), mission.For(clock.DayIndex(now))))
}

// ---------------- /progress -----------------

func (h *Handler) handleProgress(chatID int64) {
	// rolling window: today and the 29 days before it
	since := h.Clock.Now().AddDate(0, 0, -29).Format("2006-01-02")
	dates, err := h.DB.DistinctReportDates(chatID, since)
	if err != nil {
		log.Printf("progress query for %d failed: %v", chatID, err)
		h.send(chatID, textProgressFailed)
		return
	}
	list := "нет"
	if len(dates) > 0 {
		list = strings.Join(dates, ", ")
	}
	h.send(chatID, fmt.Sprintf("Дней с отчётом за 30 дней: %d\nДаты: %s", len(dates), list))
}

// ---------------- /setreminder --------------

func (h *Handler) handleSetReminder(chatID int64, args string) {
	args = strings.TrimSpace(args)
	if args == "" || len(strings.Fields(args)) != 1 || !strings.Contains(args, ":") {
		h.send(chatID, textSetReminderUsage)
		return
	}
	hh, mm, err := clock.ParseHM(args)
	if err != nil {
		h.send(chatID, textBadTime)
		return
	}
	hm := fmt.Sprintf("%02d:%02d", hh, mm)
	if err := h.DB.UpsertReminder(chatID, hm); err != nil {
		log.Printf("upsert reminder for %d failed: %v", chatID, err)
		h.send(chatID, textReminderFailed)
		return
	}
	h.send(chatID, fmt.Sprintf("Напоминание установлено на %s каждый день.", hm))
}
