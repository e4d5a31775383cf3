package bot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/spottergrid/internal/api/feed"
	"github.com/omarshaarawi/spottergrid/internal/metrics"
	"github.com/omarshaarawi/spottergrid/internal/repository/memory"
	"github.com/omarshaarawi/spottergrid/internal/service"
)

const chatID = 42

const rosterJSON = `{"players": [
	{"number": 3, "position": "K", "name": "Kicker"},
	{"number": 3, "position": "CB", "name": "Corner"}
]}`

type stubFiles struct {
	url string
	err error
}

func (s stubFiles) GetFileDirectURL(string) (string, error) {
	return s.url, s.err
}

func newTestHandler(files fileLocator) *Handler {
	svc := service.NewBoardService(nil, nil, memory.NewRepository(), metrics.NewRecorder())
	return NewHandler(svc, feed.NewClient(0), files)
}

func commandUpdate(text string) tgbotapi.Update {
	command := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: chatID},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command)}},
	}}
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{Text: text, Chat: &tgbotapi.Chat{ID: chatID}}}
}

func command(t *testing.T, h *Handler, text string) tgbotapi.MessageConfig {
	t.Helper()
	reply, ok := h.HandleCommand(context.Background(), commandUpdate(text)).(tgbotapi.MessageConfig)
	require.True(t, ok, "expected a text reply to %s", text)
	return reply
}

func TestHandleCommandBasics(t *testing.T) {
	h := newTestHandler(stubFiles{})

	assert.Contains(t, command(t, h, "/start").Text, "Welcome to SpotterGrid")
	assert.Contains(t, command(t, h, "/help").Text, "/board")
	assert.Contains(t, command(t, h, "/nope").Text, "Unknown command")
	assert.Equal(t, "Markdown", command(t, h, "/help").ParseMode)
}

func TestTeamsCommand(t *testing.T) {
	h := newTestHandler(stubFiles{})

	reply := command(t, h, "/teams ducks")
	assert.Contains(t, reply.Text, "Oregon Ducks")
	assert.NotContains(t, reply.Text, "Iowa Hawkeyes")

	assert.Contains(t, command(t, h, "/teams zzzz").Text, "No teams match")
}

func TestTeamCommand(t *testing.T) {
	h := newTestHandler(stubFiles{})

	assert.Contains(t, command(t, h, "/team").Text, "Usage: /team")
	assert.Equal(t, "Team set to *Purdue Boilermakers*.", command(t, h, "/team purdue").Text)
	assert.Contains(t, command(t, h, "/team zzzz").Text, "Error setting team")
}

func TestBoardBeforeRoster(t *testing.T) {
	h := newTestHandler(stubFiles{})

	assert.Equal(t, noRosterText, command(t, h, "/board").Text)
	assert.Equal(t, noRosterText, command(t, h, "/print").Text)
	assert.Equal(t, noRosterText, command(t, h, "/roster").Text)
}

func TestSubmitJSONText(t *testing.T) {
	h := newTestHandler(stubFiles{})
	command(t, h, "/team iowa")

	reply, ok := h.HandleMessage(context.Background(), textUpdate(rosterJSON))
	require.True(t, ok)
	assert.Contains(t, reply.Text, "Iowa Hawkeyes Spotting Board")
	assert.Contains(t, reply.Text, "*3*  🟩 K Kicker  🟥 CB Corner")

	assert.Equal(t, reply.Text, command(t, h, "/board").Text)
}

func TestSubmitInvalidJSONText(t *testing.T) {
	h := newTestHandler(stubFiles{})

	reply, ok := h.HandleMessage(context.Background(), textUpdate(`{"players": [{"number": 1}]}`))
	require.True(t, ok)
	assert.Contains(t, reply.Text, "missing position")
}

func TestIgnoresChatter(t *testing.T) {
	h := newTestHandler(stubFiles{})

	_, ok := h.HandleMessage(context.Background(), textUpdate("good game"))
	assert.False(t, ok)
}

func TestSubmitDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterJSON))
	}))
	defer srv.Close()

	h := newTestHandler(stubFiles{url: srv.URL})
	update := textUpdate("")
	update.Message.Document = &tgbotapi.Document{FileID: "file-1", FileName: "roster.JSON"}

	reply, ok := h.HandleMessage(context.Background(), update)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "K Kicker")
}

func TestSubmitDocumentLocateError(t *testing.T) {
	h := newTestHandler(stubFiles{err: errors.New("file is too big")})
	update := textUpdate("")
	update.Message.Document = &tgbotapi.Document{FileID: "file-1", MimeType: "application/json"}

	reply, ok := h.HandleMessage(context.Background(), update)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "file is too big")
}

func TestPrintAndRosterDocuments(t *testing.T) {
	h := newTestHandler(stubFiles{})
	_, ok := h.HandleMessage(context.Background(), textUpdate(rosterJSON))
	require.True(t, ok)

	doc, ok := h.HandleCommand(context.Background(), commandUpdate("/print")).(tgbotapi.DocumentConfig)
	require.True(t, ok)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "spotting-board.html", file.Name)
	assert.Contains(t, string(file.Bytes), "Kicker")

	doc, ok = h.HandleCommand(context.Background(), commandUpdate("/roster")).(tgbotapi.DocumentConfig)
	require.True(t, ok)
	file, ok = doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "roster.json", file.Name)
	assert.Contains(t, string(file.Bytes), `"position": "CB"`)
}

func TestFetchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rosterJSON))
	}))
	defer srv.Close()

	h := newTestHandler(stubFiles{})
	assert.Contains(t, command(t, h, "/fetch").Text, "Usage: /fetch")
	assert.Contains(t, command(t, h, "/fetch "+srv.URL).Text, "CB Corner")
}

func TestSubmitDocumentErrorHidesFileURL(t *testing.T) {
	h := newTestHandler(stubFiles{err: &url.Error{
		Op:  "Post",
		URL: "https://api.telegram.org/bot123456:SECRET-TOKEN/getFile",
		Err: errors.New("connection reset by peer"),
	}})
	update := textUpdate("")
	update.Message.Document = &tgbotapi.Document{FileID: "file-1", FileName: "roster.json"}

	reply, ok := h.HandleMessage(context.Background(), update)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "connection reset by peer")
	assert.NotContains(t, reply.Text, "SECRET-TOKEN")
}

func TestAllowedChat(t *testing.T) {
	h := newTestHandler(stubFiles{})
	assert.True(t, h.Allowed(chatID))
	assert.True(t, h.Allowed(7))

	h.WithAllowedChat(chatID)
	assert.True(t, h.Allowed(chatID))
	assert.False(t, h.Allowed(7))
}
