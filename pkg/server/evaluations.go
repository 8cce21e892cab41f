package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/factorlab/craftbench/pkg/engine"
	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"github.com/factorlab/craftbench/pkg/serializer"
)

// handleEvaluations dispatches /v1/evaluations by method:
// POST evaluates one machine against one recipe, GET evaluates every
// eligible machine with default choices.
func (s *Server) handleEvaluations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleEvaluateOne(w, r)
	case http.MethodGet:
		s.handleEvaluateAll(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		s.writeError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
	}
}

func (s *Server) handleEvaluateOne(w http.ResponseWriter, r *http.Request) {
	var req EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if req.Machine == "" || req.Recipe == "" {
		s.writeError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"machine and recipe are required", false, nil)
		return
	}

	rec, err := s.store.Get(req.Recipe)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	ev, err := s.engine.Evaluate(r.Context(), engine.Request{
		Machine:     req.Machine,
		Recipe:      rec,
		VoltageTier: req.VoltageTier,
		Choices:     req.Choices,
		TierBudget:  req.TierBudget,
	})
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ev)
}

func (s *Server) handleEvaluateAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	recipeID := q.Get("recipe")
	if recipeID == "" {
		s.writeError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"recipe query parameter is required", false, nil)
		return
	}

	rec, err := s.store.Get(recipeID)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	tier, err := queryInt(q.Get("tier"), rec.VoltageTier)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"invalid tier parameter", false, map[string]any{"tier": q.Get("tier")})
		return
	}
	budget, err := queryInt(q.Get("budget"), 0)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"invalid budget parameter", false, map[string]any{"budget": q.Get("budget")})
		return
	}

	evals, err := s.engine.EvaluateAll(r.Context(), rec, tier, budget)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	resp := struct {
		Recipe      string               `json:"recipe"`
		VoltageTier int                  `json:"voltageTier"`
		TierBudget  int                  `json:"tierBudget"`
		Evaluations []*engine.Evaluation `json:"evaluations"`
		Count       int                  `json:"count"`
	}{
		Recipe:      recipeID,
		VoltageTier: tier,
		TierBudget:  budget,
		Evaluations: evals,
		Count:       len(evals),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter, returning def when
// the parameter is absent.
func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
