package models

import (
	"fmt"
	"slices"
)

type Side int

const (
	Offense Side = iota
	Defense
)

func (s Side) String() string {
	if s == Offense {
		return "offense"
	}
	return "defense"
}

func (s Side) Opposite() Side {
	if s == Offense {
		return Defense
	}
	return Offense
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "offense":
		*s = Offense
	case "defense":
		*s = Defense
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Cell holds the occupants of one jersey number. Players are borrowed from
// the ingested roster; only their membership of a side ever changes.
type Cell struct {
	Offense []*Player `json:"offense"`
	Defense []*Player `json:"defense"`
}

func (c *Cell) Side(s Side) []*Player {
	if s == Offense {
		return c.Offense
	}
	return c.Defense
}

func (c *Cell) Add(s Side, p *Player) {
	if s == Offense {
		c.Offense = append(c.Offense, p)
		return
	}
	c.Defense = append(c.Defense, p)
}

// Move takes p off side from and appends it to the opposite side. It reports
// false when p is not on side from.
func (c *Cell) Move(p *Player, from Side) bool {
	players := c.Side(from)
	idx := slices.Index(players, p)
	if idx < 0 {
		return false
	}
	players = slices.Delete(players, idx, idx+1)
	if from == Offense {
		c.Offense = players
	} else {
		c.Defense = players
	}
	c.Add(from.Opposite(), p)
	return true
}

func (c *Cell) Len() int {
	return len(c.Offense) + len(c.Defense)
}

func (c *Cell) TwoWay() bool {
	return len(c.Offense) > 0 && len(c.Defense) > 0
}

type BoardMap map[int]*Cell

// Players returns every placed player, in number order, offense before defense.
func (m BoardMap) Players() []*Player {
	numbers := make([]int, 0, len(m))
	for n := range m {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	var players []*Player
	for _, n := range numbers {
		players = append(players, m[n].Offense...)
		players = append(players, m[n].Defense...)
	}
	return players
}

type Move struct {
	Number int     `json:"number"`
	Player *Player `json:"player"`
	From   Side    `json:"from"`
	To     Side    `json:"to"`
	Rule   string  `json:"rule"`
}

type Board struct {
	Team    Team     `json:"team"`
	Cells   BoardMap `json:"cells"`
	Moves   []Move   `json:"moves"`
	Active  int      `json:"active"`
	Ignored int      `json:"ignored"`
}

// TwoWayNumbers counts the numbers that still have players on both sides.
func (b *Board) TwoWayNumbers() int {
	count := 0
	for _, cell := range b.Cells {
		if cell.TwoWay() {
			count++
		}
	}
	return count
}

// RelocatedPlayers counts the distinct players moved at least once. A player
// moved away and back again counts once.
func (b *Board) RelocatedPlayers() int {
	seen := make(map[*Player]bool, len(b.Moves))
	for _, m := range b.Moves {
		seen[m.Player] = true
	}
	return len(seen)
}
