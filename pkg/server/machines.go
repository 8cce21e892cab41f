package server

import (
	"net/http"
	"sort"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"github.com/factorlab/craftbench/pkg/serializer"
)

// handleMachines handles GET /v1/machines. The optional ?recipe= query
// parameter restricts the listing to machines eligible for that recipe.
func (s *Server) handleMachines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	reg := s.engine.Registry()
	names := reg.Names()

	if recipeID := r.URL.Query().Get("recipe"); recipeID != "" {
		rec, err := s.store.Get(recipeID)
		if err != nil {
			s.writeStructuredError(w, r, err)
			return
		}
		names = reg.Eligible(rec)
	}

	machines := make([]MachineSummary, 0, len(names))
	for _, name := range names {
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		var choices []string
		for choice := range def.Choices {
			choices = append(choices, choice)
		}
		sort.Strings(choices)
		machines = append(machines, MachineSummary{Name: name, Choices: choices})
	}

	serializer.RespondJSON(w, http.StatusOK, MachinesResponse{
		Machines: machines,
		Count:    len(machines),
	})
}

// handleRecipes handles GET /v1/recipes.
func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	ids := s.store.IDs()
	serializer.RespondJSON(w, http.StatusOK, RecipesResponse{
		Recipes: ids,
		Count:   len(ids),
	})
}
