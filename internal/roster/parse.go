package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

var (
	ErrMissingPlayers  = errors.New("missing players array")
	ErrMissingPosition = errors.New("missing position")
	ErrInvalidNumber   = errors.New("invalid number")
)

type payload struct {
	Team    string          `json:"team"`
	Players json.RawMessage `json:"players"`
}

type rawPlayer struct {
	Number       json.RawMessage `json:"number"`
	Position     *string         `json:"position"`
	Name         string          `json:"name"`
	PhoneticName string          `json:"phonetic_name"`
	Ignore       flag            `json:"ignore"`
	Flip         flag            `json:"flip"`
	SpecialTeams []string        `json:"special_teams"`
}

// flag keeps the raw spelling of a string flag. JSON booleans are accepted
// as "true" and "".
type flag string

func (f *flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null", "false":
		*f = ""
		return nil
	case "true":
		*f = "true"
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag must be a string or boolean: %w", err)
	}
	*f = flag(s)
	return nil
}

// Parse decodes a {"players": [...]} payload. Every returned player has an
// integer number and a non-empty position.
func Parse(r io.Reader) (models.Roster, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxError):
			return models.Roster{}, fmt.Errorf("invalid JSON at character %d: %w", syntaxError.Offset, err)
		case errors.As(err, &typeError):
			return models.Roster{}, fmt.Errorf("%w: payload must be an object", ErrMissingPlayers)
		case errors.Is(err, io.EOF):
			return models.Roster{}, errors.New("empty payload")
		}
		return models.Roster{}, fmt.Errorf("invalid JSON: %w", err)
	}

	raw := bytes.TrimSpace(p.Players)
	if len(raw) == 0 || raw[0] != '[' {
		return models.Roster{}, ErrMissingPlayers
	}

	var entries []rawPlayer
	if err := json.Unmarshal(raw, &entries); err != nil {
		return models.Roster{}, fmt.Errorf("error decoding players: %w", err)
	}

	players := make([]models.Player, 0, len(entries))
	for i, entry := range entries {
		player, err := entry.toPlayer()
		if err != nil {
			return models.Roster{}, fmt.Errorf("player %d: %w", i, err)
		}
		players = append(players, player)
	}

	return models.Roster{TeamName: strings.TrimSpace(p.Team), Players: players}, nil
}

func (e rawPlayer) toPlayer() (models.Player, error) {
	number, err := parseNumber(e.Number)
	if err != nil {
		return models.Player{}, err
	}
	if e.Position == nil || *e.Position == "" {
		return models.Player{}, ErrMissingPosition
	}

	return models.Player{
		Number:       number,
		Position:     *e.Position,
		Name:         e.Name,
		PhoneticName: e.PhoneticName,
		Ignore:       string(e.Ignore),
		Flip:         string(e.Flip),
		SpecialTeams: e.SpecialTeams,
	}, nil
}

// parseNumber accepts an integral JSON number or a numeric string.
func parseNumber(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidNumber)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, raw)
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		return n, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, raw)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidNumber, raw)
	}
	return int(f), nil
}

// Encode writes players back out in the payload shape Parse accepts.
func Encode(w io.Writer, r models.Roster) error {
	out := struct {
		Team    string          `json:"team,omitempty"`
		Players []models.Player `json:"players"`
	}{Team: r.TeamName, Players: r.Players}
	if out.Players == nil {
		out.Players = []models.Player{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
