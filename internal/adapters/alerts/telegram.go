package alerts

import (
	"fmt"

	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"

	"github.com/eventfindr/notifier/pkg/logger/types"
)

// Telegram forwards log entries at or above a level to an ops chat.
type Telegram struct {
	bot   *tele.Bot
	chat  *tele.Chat
	level zapcore.Level
}

func NewTelegram(token string, chatID int64, level zapcore.Level) (*Telegram, error) {
	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create alert bot: %w", err)
	}

	chat, err := bot.ChatByID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert chat %d: %w", chatID, err)
	}

	return &Telegram{
		bot:   bot,
		chat:  chat,
		level: level,
	}, nil
}

// Hook returns a log hook suitable for logger.SetLogHook.
func (t *Telegram) Hook() types.LogHook {
	return func(log types.Log) {
		if log.Level < t.level {
			return
		}
		msg := fmt.Sprintf("[%s] %s\n%s\n%s",
			log.Level.CapitalString(),
			log.LoggerName,
			log.Message,
			log.Caller,
		)
		if _, err := t.bot.Send(t.chat, msg); err != nil {
			// can't log here without recursing through the hook
			fmt.Printf("failed to send alert to chat %d: %v\n", t.chat.ID, err)
		}
	}
}
