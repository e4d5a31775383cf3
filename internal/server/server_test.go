package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/spottergrid/internal/metrics"
	"github.com/omarshaarawi/spottergrid/internal/repository/memory"
	"github.com/omarshaarawi/spottergrid/internal/service"
)

const rosterJSON = `{
	"team": "Iowa Hawkeyes",
	"players": [
		{"number": 3, "position": "K", "name": "Kicker"},
		{"number": 3, "position": "CB", "name": "Corner"},
		{"number": 12, "position": "QB", "name": "Passer"},
		{"number": 40, "position": "LB", "name": "Backer", "ignore": "Y"}
	]
}`

func newTestServer() *Server {
	svc := service.NewBoardService(nil, nil, memory.NewRepository(), metrics.NewRecorder())
	return New(svc, metrics.NewRecorder())
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeams(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/teams?q=state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Teams []struct {
			Name string `json:"name"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Teams)
	for _, team := range out.Teams {
		assert.Contains(t, strings.ToLower(team.Name), "state")
	}
}

func TestCreateBoardJSON(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/boards", rosterJSON)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	out := decode(t, w)
	assert.EqualValues(t, 3, out["active"])
	assert.EqualValues(t, 1, out["ignored"])
}

func TestCreateBoardFormats(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"text", "text/plain; charset=utf-8", "Kicker"},
		{"markdown", "text/markdown; charset=utf-8", "Iowa Hawkeyes Spotting Board"},
		{"html", "text/html; charset=utf-8", "<title>Iowa Hawkeyes Spotting Board</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/boards?format="+tt.format, rosterJSON)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestCreateBoardTeamOverride(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/boards?format=markdown&team=purdue", rosterJSON)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Purdue Boilermakers Spotting Board")
}

func TestCreateBoardErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"malformed json", "/boards", `{"players": [`, http.StatusBadRequest},
		{"missing players", "/boards", `{"team": "Iowa Hawkeyes"}`, http.StatusBadRequest},
		{"missing position", "/boards", `{"players": [{"number": 1}]}`, http.StatusBadRequest},
		{"unknown team", "/boards", `{"team": "zzzz", "players": []}`, http.StatusBadRequest},
		{"unknown format", "/boards?format=pdf", `{"players": []}`, http.StatusBadRequest},
		{"too large", "/boards", `{"players": [` + strings.Repeat(" ", maxBodyBytes) + `]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestSessions(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodPost, "/sessions", rosterJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	out := decode(t, w)
	id, ok := out["id"].(string)
	require.True(t, ok)
	assert.Equal(t, "Iowa Hawkeyes", out["team"])

	w = do(t, s, http.MethodGet, "/sessions/"+id+"/board?format=markdown", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "*3*")

	w = do(t, s, http.MethodGet, "/sessions/missing/board", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := service.NewBoardService(nil, nil, memory.NewRepository(), rec)
	s := New(svc, rec)

	do(t, s, http.MethodGet, "/healthz", "")
	do(t, s, http.MethodPost, "/boards", rosterJSON)

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `spottergrid_http_requests_total{route="/healthz",status="200"} 1`)
	assert.Contains(t, w.Body.String(), "spottergrid_boards_generated_total 1")
}
