package alert

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

type NotifierFunc func(ctx context.Context, a Alert) error

func (f NotifierFunc) Notify(ctx context.Context, a Alert) error {
	return f(ctx, a)
}

// LogNotifier writes alerts to the log and never fails.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, a Alert) error {
	log.Warn().Time("at", a.At).Float64("ratio", a.Ratio).Str("title", a.Title).Msg(a.Message)
	return nil
}

// Multi delivers each alert to every notifier, even when some of them fail.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, a Alert) error {
	var result error
	for _, n := range m {
		if err := n.Notify(ctx, a); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends alerts as chat messages through a Telegram bot.
type Telegram struct {
	bot  sender
	chat int64
}

var ErrNoToken = errors.New("telegram token is empty")

func NewTelegram(token string, chat int64) (*Telegram, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Info().Str("@", bot.Self.UserName).Int64("chat", chat).Msg("Telegram connected")
	return &Telegram{bot: bot, chat: chat}, nil
}

func (t *Telegram) Notify(ctx context.Context, a Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chat, a.String()))
	return err
}
