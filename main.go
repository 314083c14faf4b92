package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"

	"telegram-mission-bot/internal/clock"
	"telegram-mission-bot/internal/config"
	"telegram-mission-bot/internal/export"
	"telegram-mission-bot/internal/handlers"
	"telegram-mission-bot/internal/scheduler"
	"telegram-mission-bot/internal/storage"
	"telegram-mission-bot/internal/utils"
)

func main() {
	cfg, err := config.Load()
	utils.Must(err)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	utils.Must(err)

	clk, err := clock.New(cfg.Timezone, clockwork.NewRealClock())
	utils.Must(err)

	db, err := storage.New(cfg.DBPath)
	utils.Must(err)

	h := handlers.New(bot, db, export.NewWriter(cfg.CSVBackup), clk)

	s, err := scheduler.Start(bot, db, clk)
	utils.Must(err)
	defer func() { _ = s.Shutdown() }()

	log.Printf("authorized as @%s", bot.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	// Sequential consumption keeps each user's messages in arrival order.
	for upd := range bot.GetUpdatesChan(updateConfig) {
		if upd.Message != nil {
			h.HandleMessage(upd.Message)
		}
	}
}
