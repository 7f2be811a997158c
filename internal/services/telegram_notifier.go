package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nanofrontier/internal/config"
	"nanofrontier/internal/models"
)

// TelegramNotifier шлёт операторам сообщение о каждой новой заявке.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier возвращает (nil, nil), если интеграция не настроена —
// вызывающий код просто не уведомляет.
func NewTelegramNotifier(cfg config.TelegramConfig) (*TelegramNotifier, error) {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		log.Printf("[tg] bot token or chat id not configured, notifications disabled")
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

func (t *TelegramNotifier) NotifyNewLead(lead *models.Lead, off config.Offering) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf(
		"New lead for %s\nInvestor: %s\nEmail: %s\nAmount: %.2f %s",
		off.ProductName, lead.InvestorName, lead.Email, lead.Amount, off.Currency,
	)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
