package handlers

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-mission-bot/internal/clock"
	"telegram-mission-bot/internal/conversation"
	"telegram-mission-bot/internal/export"
	"telegram-mission-bot/internal/storage"
)

// Sender is the outbound half of the messaging gateway. *tgbotapi.BotAPI
// satisfies it; tests plug in a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Handler struct {
	Bot    Sender
	DB     *storage.DB
	Export *export.Writer
	Conv   *conversation.Manager
	Clock  *clock.Clock
}

func New(bot Sender, db *storage.DB, exp *export.Writer, clk *clock.Clock) *Handler {
	return &Handler{
		Bot:    bot,
		DB:     db,
		Export: exp,
		Conv:   conversation.NewManager(),
		Clock:  clk,
	}
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.HandleCommand(msg)
		return
	}
	h.HandleText(msg)
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d failed: %v", chatID, err)
	}
}

func username(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return ""
	}
	return msg.From.UserName
}
