package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gabapcia/txalert/internal/pkg/logger"
	"github.com/gabapcia/txalert/internal/pkg/resilience/retry"
	"github.com/gabapcia/txalert/internal/pkg/telemetry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrInvalidChatID is returned when no destination chat is configured.
var ErrInvalidChatID = errors.New("invalid chat id")

// Delivery describes the outcome of a Send call.
type Delivery struct {
	MessageID int
	ChatID    int64
	DryRun    bool
}

// Sender delivers a pre-rendered MarkdownV2 message.
type Sender interface {
	Send(ctx context.Context, text string) (Delivery, error)
}

// permanent reports whether a Telegram API error will not go away on retry.
func permanent(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	default:
		return false
	}
}

func classify(err error) error {
	if permanent(err) {
		return retry.Unrecoverable(err)
	}

	return err
}

type telegramSender struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	channel string
	retry   retry.Retry
}

var _ Sender = (*telegramSender)(nil)

// NewTelegramSender authenticates against the Bot API and returns a Sender
// posting to chatID. chatID is either a numeric id or a public channel
// username such as "@alerts". endpoint follows tgbotapi.APIEndpoint's format;
// an empty value selects the public API.
func NewTelegramSender(ctx context.Context, httpClient tgbotapi.HTTPClient, token, endpoint, chatID string, r retry.Retry) (*telegramSender, error) {
	if chatID == "" {
		return nil, ErrInvalidChatID
	}

	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := retry.Value(ctx, r, func() (*tgbotapi.BotAPI, error) {
		bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
		return bot, classify(err)
	})
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	s := &telegramSender{bot: bot, retry: r}
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		s.chatID = id
	} else {
		s.channel = chatID
	}

	logger.Info(ctx, "telegram bot authorized", "bot", bot.Self.UserName)

	return s, nil
}

func (s *telegramSender) message(text string) tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	if s.channel != "" {
		msg = tgbotapi.NewMessageToChannel(s.channel, text)
	} else {
		msg = tgbotapi.NewMessage(s.chatID, text)
	}

	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	return msg
}

// Send posts text to the configured chat. The Bot API client does not take a
// context, so ctx only bounds the retry loop.
func (s *telegramSender) Send(ctx context.Context, text string) (Delivery, error) {
	ctx, span := telemetry.Tracer("notify").Start(ctx, "notify.Send")
	defer span.End()

	msg := s.message(text)

	sent, err := retry.Value(ctx, s.retry, func() (tgbotapi.Message, error) {
		m, err := s.bot.Send(msg)
		return m, classify(err)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return Delivery{}, err
	}

	d := Delivery{MessageID: sent.MessageID}
	if sent.Chat != nil {
		d.ChatID = sent.Chat.ID
	}

	span.SetAttributes(attribute.Int("telegram.message_id", d.MessageID))
	logger.Info(ctx, "telegram message sent", "messageId", d.MessageID, "chatId", d.ChatID)

	return d, nil
}

type dryRunSender struct{}

var _ Sender = dryRunSender{}

// NewDryRunSender returns a Sender that only logs the message it would send.
func NewDryRunSender() Sender {
	return dryRunSender{}
}

func (dryRunSender) Send(ctx context.Context, text string) (Delivery, error) {
	logger.Info(ctx, "telegram delivery disabled, message not sent", "message", text)
	return Delivery{DryRun: true}, nil
}
