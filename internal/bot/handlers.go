package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/spottergrid/internal/api/feed"
	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/render"
	"github.com/omarshaarawi/spottergrid/internal/roster"
	"github.com/omarshaarawi/spottergrid/internal/service"
)

const helpText = "Available commands:\n" +
	"/teams [query] - List known teams\n" +
	"/team <team> - Set the team for this chat\n" +
	"/board - Show the current spotting board\n" +
	"/print - Get the printable board as an HTML file\n" +
	"/roster - Get the submitted roster as JSON\n" +
	"/fetch <url> - Load a roster from a URL\n\n" +
	"Send a roster as JSON text or as a .json file to build a board."

const noRosterText = "No roster submitted yet. Send a roster as JSON text or as a .json file."

// fileLocator resolves an uploaded Telegram file to a download URL.
type fileLocator interface {
	GetFileDirectURL(fileID string) (string, error)
}

type Handler struct {
	boardService *service.BoardService
	feed         *feed.Client
	files        fileLocator
	allowedChat  int64
}

func NewHandler(boardService *service.BoardService, feedClient *feed.Client, files fileLocator) *Handler {
	return &Handler{boardService: boardService, feed: feedClient, files: files}
}

// WithAllowedChat restricts the bot to one chat. Zero accepts every chat.
func (h *Handler) WithAllowedChat(chatID int64) *Handler {
	h.allowedChat = chatID
	return h
}

func (h *Handler) Allowed(chatID int64) bool {
	return h.allowedChat == 0 || h.allowedChat == chatID
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("chat:%d", chatID)
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.Chattable {
	chatID := update.Message.Chat.ID
	msg := tgbotapi.NewMessage(chatID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to SpotterGrid! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "teams":
		h.handleTeams(&msg, args)
	case "team":
		h.handleTeam(&msg, args)
	case "board":
		h.handleBoard(&msg)
	case "print":
		return h.handlePrint(msg)
	case "roster":
		return h.handleRoster(msg)
	case "fetch":
		h.handleFetch(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

// HandleMessage treats a non-command message as a roster submission. It
// returns false when the message carries nothing that looks like a roster.
func (h *Handler) HandleMessage(ctx context.Context, update tgbotapi.Update) (tgbotapi.MessageConfig, bool) {
	message := update.Message
	msg := tgbotapi.NewMessage(message.Chat.ID, "")
	msg.ParseMode = "Markdown"

	switch {
	case message.Document != nil && isJSONDocument(message.Document):
		r, err := h.download(ctx, message.Document.FileID)
		if err != nil {
			msg.Text = fmt.Sprintf("Error reading roster file: %v", err)
			return msg, true
		}
		h.submit(&msg, r)
	case strings.HasPrefix(strings.TrimSpace(message.Text), "{"):
		r, err := roster.Parse(strings.NewReader(message.Text))
		if err != nil {
			msg.Text = fmt.Sprintf("Error reading roster: %v", err)
			return msg, true
		}
		h.submit(&msg, r)
	default:
		return msg, false
	}

	return msg, true
}

func isJSONDocument(doc *tgbotapi.Document) bool {
	return doc.MimeType == "application/json" || strings.EqualFold(path.Ext(doc.FileName), ".json")
}

func (h *Handler) download(ctx context.Context, fileID string) (models.Roster, error) {
	url, err := h.files.GetFileDirectURL(fileID)
	if err != nil {
		return models.Roster{}, fmt.Errorf("error locating file: %w", feed.StripURL(err))
	}
	return h.feed.Fetch(ctx, url)
}

func (h *Handler) submit(msg *tgbotapi.MessageConfig, r models.Roster) {
	b, err := h.boardService.Submit(sessionKey(msg.ChatID), r)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building board: %v", err)
		return
	}
	msg.Text = render.Markdown(b)
}

func (h *Handler) handleTeams(msg *tgbotapi.MessageConfig, args string) {
	found := h.boardService.SearchTeams(args)
	if len(found) == 0 {
		msg.Text = fmt.Sprintf("No teams match %q.", args)
		return
	}

	var sb strings.Builder
	sb.WriteString("🏟️ *Teams*\n\n")
	for _, team := range found {
		sb.WriteString(fmt.Sprintf("• %s\n", team.Name))
	}
	msg.Text = sb.String()
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}
	team, err := h.boardService.SetTeam(sessionKey(msg.ChatID), args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error setting team: %v", err)
		return
	}
	msg.Text = fmt.Sprintf("Team set to *%s*.", team.Name)
}

func (h *Handler) handleBoard(msg *tgbotapi.MessageConfig) {
	b, err := h.boardService.Current(sessionKey(msg.ChatID))
	if err != nil {
		msg.Text = h.boardError(err)
		return
	}
	msg.Text = render.Markdown(b)
}

func (h *Handler) handlePrint(msg tgbotapi.MessageConfig) tgbotapi.Chattable {
	b, err := h.boardService.Current(sessionKey(msg.ChatID))
	if err != nil {
		msg.Text = h.boardError(err)
		return msg
	}

	var buf bytes.Buffer
	if err := render.HTML(&buf, b, h.boardService.Catalog()); err != nil {
		slog.Error("Error rendering board", "error", err)
		msg.Text = fmt.Sprintf("Error rendering board: %v", err)
		return msg
	}

	doc := tgbotapi.NewDocument(msg.ChatID, tgbotapi.FileBytes{Name: "spotting-board.html", Bytes: buf.Bytes()})
	doc.Caption = "Open in a browser and print on legal paper."
	return doc
}

func (h *Handler) handleRoster(msg tgbotapi.MessageConfig) tgbotapi.Chattable {
	session, ok := h.boardService.Session(sessionKey(msg.ChatID))
	if !ok || len(session.Players) == 0 {
		msg.Text = noRosterText
		return msg
	}

	var buf bytes.Buffer
	if err := roster.Encode(&buf, models.Roster{TeamName: session.TeamName, Players: session.Players}); err != nil {
		msg.Text = fmt.Sprintf("Error encoding roster: %v", err)
		return msg
	}
	return tgbotapi.NewDocument(msg.ChatID, tgbotapi.FileBytes{Name: "roster.json", Bytes: buf.Bytes()})
}

func (h *Handler) handleFetch(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a URL. Usage: /fetch <url>"
		return
	}
	r, err := h.feed.Fetch(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching roster: %v", err)
		return
	}
	h.submit(msg, r)
}

func (h *Handler) boardError(err error) string {
	if errors.Is(err, service.ErrNoRoster) {
		return noRosterText
	}
	return fmt.Sprintf("Error building board: %v", err)
}
