package teams

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Len(t, c.Teams, 23)
	assert.Equal(t, "Illinois Fighting Illini", c.Teams[0].Name)

	logo, ok := c.Logo("Oregon Ducks")
	assert.True(t, ok)
	assert.Equal(t, "./logos/ORE_Primary.svg", logo)

	_, ok = c.Logo("Notre Dame")
	assert.False(t, ok)

	assert.Equal(t, "#BB0000", c.Color("Ohio State Buckeyes"))
	assert.Equal(t, "#e74c3c", c.Color("Notre Dame"))
}

func TestTeamFallsBackToDefaults(t *testing.T) {
	team := Default().Team("Notre Dame")

	assert.Equal(t, "Notre Dame", team.Name)
	assert.Empty(t, team.Logo)
	assert.Equal(t, "#e74c3c", team.Color)
}

func TestRoleColor(t *testing.T) {
	c := Default()

	assert.Equal(t, "#FFD700", c.RoleColor("KR"))
	assert.Equal(t, "#000000", c.RoleColor("ST"))
	assert.Equal(t, "#808080", c.RoleColor("XX"))
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("empty term lists everything", func(t *testing.T) {
		assert.Len(t, c.Search(""), 23)
	})

	t.Run("substring ignores case and keeps order", func(t *testing.T) {
		got := c.Search("michigan")
		require.Len(t, got, 2)
		assert.Equal(t, "Michigan Wolverines", got[0].Name)
		assert.Equal(t, "Michigan State Spartans", got[1].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("alabama"))
	})
}

func TestResolve(t *testing.T) {
	c := Default()

	tests := []struct {
		term string
		want string
	}{
		{"Iowa Hawkeyes", "Iowa Hawkeyes"},
		{"iowa hawkeyes", "Iowa Hawkeyes"},
		{"ohio", "Ohio State Buckeyes"},
		{"michigan", "Michigan Wolverines"},
		{"penn st", "Penn State Nittany Lions"},
		{"Nebraksa Cornhuskers", "Nebraska Cornhuskers"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			team, err := c.Resolve(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, team.Name)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := c.Resolve("zzzz")
		assert.True(t, errors.Is(err, ErrUnknownTeam))

		_, err = c.Resolve("  ")
		assert.True(t, errors.Is(err, ErrUnknownTeam))
	})
}

func TestParseRejectsNamelessTeam(t *testing.T) {
	_, err := Parse([]byte("teams:\n  - logo: x.svg\n"))
	assert.Error(t, err)
}

func TestContrastTextColor(t *testing.T) {
	assert.Equal(t, "#FFFFFF", ContrastTextColor("#000000"))
	assert.Equal(t, "#000000", ContrastTextColor("#FFD700"))
	assert.Equal(t, "#000000", ContrastTextColor("#32CD32"))
	assert.Equal(t, "#FFFFFF", ContrastTextColor("#4169E1"))
	assert.Equal(t, "#FFFFFF", ContrastTextColor("#FF4500"))
}
