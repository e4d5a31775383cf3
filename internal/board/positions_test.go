package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

func TestIsTruthy(t *testing.T) {
	for _, raw := range []string{"y", "Y", "true", "True", "TRUE"} {
		assert.True(t, IsTruthy(raw), raw)
	}
	for _, raw := range []string{"", "n", "N", "yes", "1", "false", "tRUE", " y"} {
		assert.False(t, IsTruthy(raw), raw)
	}
}

func TestIsNaturallyOffensive(t *testing.T) {
	tests := []struct {
		position string
		want     bool
	}{
		{"QB", true},
		{"RB", true},
		{"C", true},
		{"LS", true},
		{"QB/WR", true},
		{"WR/CB", true},
		{"CB/WR", true},
		{"DE", false},
		{"DL/LB", false},
		{"K", false},
		{"P/K", false},
		{"qb", false},
		{"ATH", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNaturallyOffensive(tt.position))
		})
	}
}

func TestIsSpecialTeams(t *testing.T) {
	for _, pos := range []string{"K", "LS", "P", "SNP", "P/K", "K/P", "PK", "KP", "ST"} {
		assert.True(t, IsSpecialTeams(pos), pos)
	}
	// No slash splitting here, unlike the offensive check.
	for _, pos := range []string{"K/WR", "LS/TE", "k", "CB", "QB", ""} {
		assert.False(t, IsSpecialTeams(pos), pos)
	}
}

func TestOnlySpecialTeams(t *testing.T) {
	k := &models.Player{Position: "K"}
	p := &models.Player{Position: "P"}
	cb := &models.Player{Position: "CB"}

	assert.False(t, OnlySpecialTeams(nil))
	assert.True(t, OnlySpecialTeams([]*models.Player{k, p}))
	assert.False(t, OnlySpecialTeams([]*models.Player{k, cb}))
}
