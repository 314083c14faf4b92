package handlers

import (
	"log"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-mission-bot/internal/clock"
	"telegram-mission-bot/internal/models"
)

const minReportLen = 10

// HandleText receives free text. Outside a /report conversation it is
// ignored; inside one it either rejects a too-short report (staying in the
// conversation) or persists the report and ends it. The success reply is
// only sent after the durable write commits.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if h.Conv.Get(chatID) != models.StateAwaitingReport {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if utf8.RuneCountInString(text) < minReportLen {
		h.send(chatID, textReportTooShort)
		return
	}

	now := h.Clock.Now()
	rep := &models.Report{
		UserID:    chatID,
		Username:  username(msg),
		TS:        now.Format(time.RFC3339),
		LocalDate: now.Format("2006-01-02"),
		DayIndex:  clock.DayIndex(now),
		Text:      text,
	}
	if _, err := h.DB.AppendReport(rep); err != nil {
		// stay in the conversation so the user can resend
		log.Printf("append report for %d failed: %v", chatID, err)
		h.send(chatID, textReportFailed)
		return
	}
	if err := h.Export.Append(rep); err != nil {
		log.Printf("csv mirror for report %d failed: %v", rep.ID, err)
	}

	h.Conv.Set(chatID, models.StateIdle)
	h.send(chatID, textReportSaved)
}
