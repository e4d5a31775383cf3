package models

import (
	"fmt"
	"time"
)

type Player struct {
	Number       int      `json:"number"`
	Position     string   `json:"position"`
	Name         string   `json:"name,omitempty"`
	PhoneticName string   `json:"phonetic_name,omitempty"`
	Ignore       string   `json:"ignore,omitempty"`
	Flip         string   `json:"flip,omitempty"`
	SpecialTeams []string `json:"special_teams,omitempty"`
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Position)
}

type Roster struct {
	TeamName string
	Players  []Player
}

type Session struct {
	TeamName  string
	Players   []Player
	UpdatedAt time.Time
}
