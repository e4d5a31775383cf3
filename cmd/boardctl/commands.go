package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/omarshaarawi/spottergrid/internal/api/feed"
	"github.com/omarshaarawi/spottergrid/internal/board"
	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/render"
	"github.com/omarshaarawi/spottergrid/internal/roster"
	"github.com/omarshaarawi/spottergrid/internal/service"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

type options struct {
	verbose bool
	team    string
	format  string
	url     string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "boardctl",
		Short: "Build printable football spotting boards from roster JSON",
		Long: `boardctl sorts a roster onto the 0-99 spotting grid, splitting every
number into offense and defense and moving special-teamers off crowded
numbers.

Example:
  boardctl render roster.json --team "Iowa Hawkeyes" --format html > board.html`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every automatic relocation")

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a roster file, stdin or URL as a spotting board",
		Long: `Reads a {"team": ..., "players": [...]} payload and writes the board.

Formats:
  - text: bordered terminal grid
  - html: printable legal-size page
  - markdown: per-number listing
  - json: the resolved board with every relocation`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), opts, args)
		},
	}
	renderCmd.Flags().StringVarP(&opts.team, "team", "t", "", "Team name, partial or misspelled names are matched")
	renderCmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, html, markdown or json")
	renderCmd.Flags().StringVar(&opts.url, "url", "", "Fetch the roster from a URL instead of a file")
	renderCmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout for --url requests")

	teamsCmd := &cobra.Command{
		Use:   "teams [query]",
		Short: "List known teams and their colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeams(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	rootCmd.AddCommand(renderCmd, teamsCmd)
	return rootCmd
}

func runRender(ctx context.Context, out io.Writer, stdin io.Reader, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := loadRoster(ctx, stdin, opts, args)
	if err != nil {
		return err
	}
	if opts.team != "" {
		r.TeamName = opts.team
	}

	svc := service.NewBoardService(board.NewPipeline(slog.Default()), teams.Default(), nil, nil)
	b, err := svc.Generate(r.TeamName, r.Players)
	if err != nil {
		return err
	}

	return writeBoard(out, b, opts.format, svc.Catalog())
}

func loadRoster(ctx context.Context, stdin io.Reader, opts *options, args []string) (models.Roster, error) {
	if opts.url != "" {
		if len(args) > 0 {
			return models.Roster{}, fmt.Errorf("use either a file or --url, not both")
		}
		return feed.NewClient(opts.timeout).Fetch(ctx, opts.url)
	}

	if len(args) == 0 || args[0] == "-" {
		return roster.Parse(stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return models.Roster{}, fmt.Errorf("error opening roster: %w", err)
	}
	defer f.Close()

	r, err := roster.Parse(f)
	if err != nil {
		return models.Roster{}, fmt.Errorf("%s: %w", args[0], err)
	}
	return r, nil
}

func writeBoard(out io.Writer, b *models.Board, format string, catalog *teams.Catalog) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(out, render.Text(b))
		return err
	case "markdown":
		_, err := fmt.Fprintln(out, render.Markdown(b))
		return err
	case "html":
		return render.HTML(out, b, catalog)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	return fmt.Errorf("unknown format %q", format)
}

func runTeams(out io.Writer, query string) error {
	catalog := teams.Default()
	found := catalog.Search(query)
	if len(found) == 0 {
		return fmt.Errorf("no teams match %q", query)
	}

	rows := make([][]string, 0, len(found))
	for _, team := range found {
		rows = append(rows, []string{team.Name, team.Color, teams.ContrastTextColor(team.Color)})
	}
	_, err := fmt.Fprintln(out, render.Table([]string{"Team", "Color", "Text"}, rows))
	return err
}
