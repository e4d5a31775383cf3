package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/omarshaarawi/spottergrid/internal/board"
	"github.com/omarshaarawi/spottergrid/internal/metrics"
	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/repository/memory"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

var ErrNoRoster = errors.New("no roster submitted")

type BoardService struct {
	pipeline    *board.Pipeline
	catalog     *teams.Catalog
	repo        *memory.Repository
	metrics     *metrics.Recorder
	defaultTeam string
}

func NewBoardService(pipeline *board.Pipeline, catalog *teams.Catalog, repo *memory.Repository, rec *metrics.Recorder) *BoardService {
	if pipeline == nil {
		pipeline = board.NewPipeline(nil)
	}
	if catalog == nil {
		catalog = teams.Default()
	}
	return &BoardService{pipeline: pipeline, catalog: catalog, repo: repo, metrics: rec}
}

// WithDefaultTeam sets the team used when a roster names none.
func (s *BoardService) WithDefaultTeam(name string) *BoardService {
	s.defaultTeam = name
	return s
}

func (s *BoardService) Catalog() *teams.Catalog {
	return s.catalog
}

func (s *BoardService) SearchTeams(term string) []models.Team {
	return s.catalog.Search(term)
}

// Generate builds a fresh board for players. teamName may be a partial or
// misspelled name; an empty name falls back to the default team, if any.
func (s *BoardService) Generate(teamName string, players []models.Player) (*models.Board, error) {
	team, err := s.team(teamName)
	if err != nil {
		return nil, err
	}

	b := s.pipeline.Build(players)
	b.Team = team
	s.metrics.RecordBoard(b)

	s.pipeline.Logger().Info("Generated board",
		"team", team.Name,
		"players", b.Active,
		"ignored", b.Ignored,
		"moves", len(b.Moves),
	)
	return b, nil
}

func (s *BoardService) team(name string) (models.Team, error) {
	if name == "" {
		name = s.defaultTeam
	}
	if name == "" {
		return models.Team{}, nil
	}
	team, err := s.catalog.Resolve(name)
	if err != nil {
		return models.Team{}, fmt.Errorf("error resolving team: %w", err)
	}
	return team, nil
}

// SetTeam resolves query and stores it as the team for key, keeping any
// roster already submitted.
func (s *BoardService) SetTeam(key, query string) (models.Team, error) {
	team, err := s.catalog.Resolve(query)
	if err != nil {
		return models.Team{}, fmt.Errorf("error resolving team: %w", err)
	}

	session, _ := s.repo.Get(key)
	session.TeamName = team.Name
	s.repo.Save(key, session)
	return team, nil
}

// Submit stores r for key and returns its board. A roster without a team
// keeps the team previously set for key.
func (s *BoardService) Submit(key string, r models.Roster) (*models.Board, error) {
	session, _ := s.repo.Get(key)
	if r.TeamName != "" {
		session.TeamName = r.TeamName
	}

	b, err := s.Generate(session.TeamName, r.Players)
	if err != nil {
		return nil, err
	}

	session.TeamName = b.Team.Name
	session.Players = r.Players
	s.repo.Save(key, session)
	return b, nil
}

// NewSession stores r under a fresh key.
func (s *BoardService) NewSession(r models.Roster) (string, *models.Board, error) {
	key := s.repo.NewKey()
	b, err := s.Submit(key, r)
	if err != nil {
		return "", nil, err
	}
	return key, b, nil
}

// Current rebuilds the board for the roster stored under key.
func (s *BoardService) Current(key string) (*models.Board, error) {
	session, ok := s.repo.Get(key)
	if !ok || len(session.Players) == 0 {
		return nil, ErrNoRoster
	}
	return s.Generate(session.TeamName, session.Players)
}

func (s *BoardService) Session(key string) (models.Session, bool) {
	return s.repo.Get(key)
}

func (s *BoardService) PruneSessions(ttl time.Duration) int {
	return s.repo.Prune(ttl)
}
