package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/spottergrid/internal/api/feed"
	"github.com/omarshaarawi/spottergrid/internal/service"
)

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, boardService *service.BoardService, feedClient *feed.Client) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(boardService, feedClient, bot).WithAllowedChat(chatID)

	return &TelegramBot{
		bot:     bot,
		handler: handler,
		chatID:  chatID,
	}, nil
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			if !t.handler.Allowed(update.Message.Chat.ID) {
				slog.Warn("Ignoring message from unauthorized chat", "chat_id", update.Message.Chat.ID)
				continue
			}

			if update.Message.IsCommand() {
				t.send(t.handler.HandleCommand(ctx, update))
				continue
			}

			if reply, ok := t.handler.HandleMessage(ctx, update); ok {
				t.send(reply)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// SendMessage posts text to the configured chat.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"
	_, err := t.bot.Send(msg)
	if err != nil {
		slog.Error("Error sending message", "error", err)
	}
	return err
}

// send delivers reply, splitting text messages that exceed Telegram's limit.
func (t *TelegramBot) send(reply tgbotapi.Chattable) {
	msg, ok := reply.(tgbotapi.MessageConfig)
	if !ok {
		if _, err := t.bot.Send(reply); err != nil {
			slog.Error("Error sending message", "error", err)
		}
		return
	}

	for _, chunk := range splitMessage(msg.Text, maxMessageLength) {
		part := msg
		part.Text = chunk
		if _, err := t.bot.Send(part); err != nil {
			slog.Error("Error sending message", "error", err)
			return
		}
	}
}
