package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking events to the operations chat. It degrades
// to a no-op when no token is configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySlotBooked(ctx context.Context, booking *domain.Booking, slot *domain.Slot) {
	requester := "guest"
	if booking.UserID != nil {
		requester = "user " + *booking.UserID
	} else if booking.GuestName != nil {
		requester = fmt.Sprintf("guest %s", *booking.GuestName)
	}

	text := fmt.Sprintf(
		"*Slot booked*\n\n"+"Type: %s\n"+"Window (UTC): %s - %s\n"+"Requester: %s\n"+"Status: %s",
		slot.ResourceType,
		slot.StartTime.Format("02.01.2006 15:04"),
		slot.EndTime.Format("15:04"),
		requester,
		booking.Status,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
