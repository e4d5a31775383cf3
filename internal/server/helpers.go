package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/render"
	"github.com/omarshaarawi/spottergrid/internal/roster"
	"github.com/omarshaarawi/spottergrid/internal/service"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

const maxBodyBytes = 1 << 20

type jsonResponse map[string]any

var errUnknownFormat = errors.New("unknown format")

func readRoster(w http.ResponseWriter, r *http.Request) (models.Roster, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	parsed, err := roster.Parse(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return models.Roster{}, fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		}
		return models.Roster{}, err
	}

	// A team query parameter wins over the payload's team field.
	if team := r.URL.Query().Get("team"); team != "" {
		parsed.TeamName = team
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		slog.Error("Error encoding response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, jsonResponse{"error": err.Error()})
}

// statusFor maps service and ingestion errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoRoster):
		return http.StatusNotFound
	case errors.Is(err, teams.ErrUnknownTeam),
		errors.Is(err, errUnknownFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeBoard(w http.ResponseWriter, r *http.Request, status int, b *models.Board, catalog *teams.Catalog) {
	format := r.URL.Query().Get("format")

	var body bytes.Buffer
	contentType := "text/plain; charset=utf-8"
	switch format {
	case "", "json":
		writeJSON(w, status, b)
		return
	case "text":
		body.WriteString(render.Text(b))
	case "markdown":
		contentType = "text/markdown; charset=utf-8"
		body.WriteString(render.Markdown(b))
	case "html":
		contentType = "text/html; charset=utf-8"
		if err := render.HTML(&body, b, catalog); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", errUnknownFormat, format))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := body.WriteTo(w); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}
