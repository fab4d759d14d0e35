package notification

import (
	"context"
	"fmt"

	"github.com/bawadev/dhaana/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot) {
	text := fmt.Sprintf(
		"*New donation booking*\n\n"+"Date: %s (%s)\n"+"Food: %s\n"+"Servings: %d",
		s.Date.Format("02.01.2006"), s.TimeOfDay, b.FoodDescription, b.ServingCount,
	)
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot) {
	text := fmt.Sprintf(
		"*Your donation was approved*\n\n"+"Date: %s (%s)\n"+"Food: %s\n"+"Please confirm your booking in the app.",
		s.Date.Format("02.01.2006"), s.TimeOfDay, b.FoodDescription,
	)
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, recipient *domain.User, b *domain.Booking, s *domain.Slot) {
	text := fmt.Sprintf(
		"*Donation booking cancelled*\n\n"+"Date: %s (%s)\n"+"Food: %s\n"+"Servings: %d",
		s.Date.Format("02.01.2006"), s.TimeOfDay, b.FoodDescription, b.ServingCount,
	)
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
