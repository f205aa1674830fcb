package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"showdown-teambuilder/build"
	"showdown-teambuilder/service"
	"showdown-teambuilder/store"
)

func queryGen(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("gen")
	if raw == "" {
		return 0, nil
	}
	gen, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: gen must be a number", service.ErrBadRequest)
	}
	return gen, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var b build.Build
	if err := decodeBody(w, r, &b); err != nil {
		writeError(w, r, err)
		return
	}
	gen, err := queryGen(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.svc.Analyze(service.TeamRef{Build: &b}, gen)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var b build.Build
	if err := decodeBody(w, r, &b); err != nil {
		writeError(w, r, err)
		return
	}
	gen, err := queryGen(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	adv, err := s.svc.Advise(service.TeamRef{Build: &b}, gen)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adv)
}

type matchupRequest struct {
	Mine       service.TeamRef `json:"mine"`
	Rival      service.TeamRef `json:"rival"`
	Generation int             `json:"generation,omitempty"`
}

func (s *Server) handleMatchup(w http.ResponseWriter, r *http.Request) {
	var req matchupRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	m, gen, err := s.svc.Matchup(req.Mine, req.Rival, req.Generation)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"generation": gen, "matchup": m})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	gen, err := queryGen(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	chart, err := s.svc.Chart(gen)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

func (s *Server) handleEffectiveness(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gen, err := queryGen(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var defending []string
	for _, d := range strings.Split(q.Get("def"), ",") {
		if d = strings.TrimSpace(d); d != "" {
			defending = append(defending, d)
		}
	}
	e, err := s.svc.Effectiveness(q.Get("atk"), defending, q.Get("ability"), q.Get("item"), gen)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleShareEncode(w http.ResponseWriter, r *http.Request) {
	var b build.Build
	if err := decodeBody(w, r, &b); err != nil {
		writeError(w, r, err)
		return
	}
	code, err := build.EncodeShare(&b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": code})
}

func (s *Server) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	b, err := build.DecodeShare(r.PathValue("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type saveTeamRequest struct {
	Name  string       `json:"name"`
	Kind  string       `json:"kind"`
	Build *build.Build `json:"build"`
}

func (s *Server) handleSaveTeam(w http.ResponseWriter, r *http.Request) {
	var req saveTeamRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	kind, err := store.ParseKind(req.Kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	saved, err := s.svc.SaveTeam(req.Name, kind, req.Build)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	kind := store.Kind(r.URL.Query().Get("kind"))
	if kind != "" {
		k, err := store.ParseKind(string(kind))
		if err != nil {
			writeError(w, r, err)
			return
		}
		kind = k
	}
	teams, err := s.svc.Store.List(kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Store.Delete(r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
