package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, jsonResponse{"teams": s.service.SearchTeams(r.URL.Query().Get("q"))})
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	parsed, err := readRoster(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b, err := s.service.Generate(parsed.TeamName, parsed.Players)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeBoard(w, r, http.StatusOK, b, s.service.Catalog())
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	parsed, err := readRoster(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key, b, err := s.service.NewSession(parsed)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{
		"id":      key,
		"team":    b.Team.Name,
		"active":  b.Active,
		"ignored": b.Ignored,
		"moves":   len(b.Moves),
	})
}

func (s *Server) handleSessionBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.service.Current(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeBoard(w, r, http.StatusOK, b, s.service.Catalog())
}
