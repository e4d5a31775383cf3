package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

//go:embed board.html.tmpl
var boardTemplate string

var htmlTemplate = template.Must(template.New("board").Funcs(template.FuncMap{
	// Colors come from the embedded catalog, never from roster input.
	"roleStyle": func(r roleView) template.CSS {
		return template.CSS(fmt.Sprintf("background-color: %s; color: %s", r.Background, r.Text))
	},
}).Parse(boardTemplate))

type htmlPage struct {
	Title      string
	Team       string
	Logo       string
	TitleStyle template.CSS
	Cells      []cellView
}

// HTML writes a printable, single-page spotting board.
func HTML(w io.Writer, b *models.Board, catalog *teams.Catalog) error {
	if catalog == nil {
		catalog = teams.Default()
	}

	page := htmlPage{
		Title: title(b),
		Team:  b.Team.Name,
		Logo:  b.Team.Logo,
		Cells: buildCells(b, catalog),
	}
	if b.Team.Color != "" {
		page.TitleStyle = template.CSS(fmt.Sprintf("border-bottom: 3px solid %s", b.Team.Color))
	}

	if err := htmlTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("error rendering board: %w", err)
	}
	return nil
}

func title(b *models.Board) string {
	if b.Team.Name == "" {
		return "Spotting Board"
	}
	return b.Team.Name + " Spotting Board"
}
