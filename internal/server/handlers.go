// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/lvmcdm/export"
	"github.com/katalvlaran/lvmcdm/internal/problem"
	"github.com/katalvlaran/lvmcdm/internal/store"
	"github.com/katalvlaran/lvmcdm/topsis"
)

var (
	errRateLimited = errors.New("server: rate limit exceeded")
	errNoHistory   = errors.New("server: run history is not configured")
	errBadLimit    = errors.New("server: limit must be a positive integer")
	errBadStrict   = errors.New("server: strict must be a boolean")
)

type errorResponse struct {
	Error string `json:"error"`
}

type rankEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	DistanceBest  float64 `json:"distance_best"`
	DistanceWorst float64 `json:"distance_worst"`
}

type rankResponse struct {
	RunID   string      `json:"run_id,omitempty"`
	Policy  string      `json:"policy"`
	Ranking []rankEntry `json:"ranking"`
}

func entryOf(s topsis.Score) rankEntry {
	return rankEntry{
		Rank:          s.Rank,
		Name:          s.Alternative.Name,
		Score:         s.Score,
		DistanceBest:  s.DistanceBest,
		DistanceWorst: s.DistanceWorst,
	}
}

// writeJSON encodes v before touching the response, so an encoding failure
// becomes a 500 instead of a status line with an empty body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("server: encode response: %w", err))

		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusOf maps decode and ranking errors to HTTP status codes.
func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadStrict),
		errors.Is(err, problem.ErrMalformed),
		errors.Is(err, problem.ErrNoCriteria),
		errors.Is(err, problem.ErrDuplicateCriterion),
		errors.Is(err, problem.ErrUnknownCriterion):
		return http.StatusBadRequest
	case errors.Is(err, topsis.ErrIncompleteAlternativeData),
		errors.Is(err, topsis.ErrInvalidWeight),
		errors.Is(err, topsis.ErrInvalidValue),
		errors.Is(err, topsis.ErrDegenerateInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrRunNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rankRequest decodes the body and ranks it with the configured policy,
// optionally overridden by ?strict=.
func (s *Server) rankRequest(w http.ResponseWriter, r *http.Request) (*topsis.Result, topsis.DegeneratePolicy, error) {
	p, err := problem.DecodeJSON(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, 0, err
	}
	alts, err := p.ToAlternatives()
	if err != nil {
		return nil, 0, err
	}

	strict := s.cfg.Strict
	if v := r.URL.Query().Get("strict"); v != "" {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return nil, 0, fmt.Errorf("%w: %q", errBadStrict, v)
		}
		strict = b
	}
	policy := topsis.PolicyNeutral
	if strict {
		policy = topsis.PolicyStrict
	}

	res, err := topsis.Rank(alts, topsis.WithDegeneratePolicy(policy), topsis.WithLogger(s.logger))
	if err != nil {
		return nil, policy, err
	}

	return res, policy, nil
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	save := q.Get("save") == "true" || q.Get("save") == "1"
	if save && s.history == nil {
		writeError(w, http.StatusServiceUnavailable, errNoHistory)

		return
	}

	res, policy, err := s.rankRequest(w, r)
	if err != nil {
		s.logger.Warn("rank rejected", "error", err)
		writeError(w, statusOf(err), err)

		return
	}

	resp := rankResponse{Policy: policy.String(), Ranking: make([]rankEntry, len(res.Ranking))}
	for i, sc := range res.Ranking {
		resp.Ranking[i] = entryOf(sc)
	}

	if save {
		run, err := s.history.SaveRun(r.Context(), store.NewRun(q.Get("label"), res))
		if err != nil {
			s.logger.Error("save run", "error", err)
			writeError(w, http.StatusInternalServerError, err)

			return
		}
		resp.RunID = run.ID
		w.Header().Set("X-Run-ID", run.ID)
	}

	if q.Get("format") == "csv" {
		var buf bytes.Buffer
		if err = export.WriteRankingCSV(&buf, res); err != nil {
			s.logger.Error("write csv", "error", err)
			writeError(w, http.StatusInternalServerError, err)

			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write(buf.Bytes())

		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	res, _, err := s.rankRequest(w, r)
	if err != nil {
		writeError(w, statusOf(err), err)

		return
	}
	writeJSON(w, http.StatusOK, entryOf(res.Best()))
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, errNoHistory)

		return
	}
	limit := store.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errBadLimit)

			return
		}
		limit = n
	}

	runs, err := s.history.ListRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}
	if runs == nil {
		runs = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, errNoHistory)

		return
	}
	run, err := s.history.GetRun(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusOf(err), err)

		return
	}
	writeJSON(w, http.StatusOK, run)
}
