package machine

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/factorlab/craftbench/pkg/recipe"
)

// Registry maps machine display names to their behavior bundles. It is
// populated once during initialization with an explicit insertion order and
// exposed read-only afterwards; later registrations of an existing name
// overwrite the earlier bundle (last write wins) while keeping the name's
// original position.
type Registry struct {
	order []string
	defs  map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register binds a name to a definition. Registering an existing name
// replaces its definition; at least one deliberate rename in the catalog
// relies on this. Two names may share one definition (an alias).
func (r *Registry) Register(name string, def *Definition) {
	if name == "" || def == nil {
		return
	}
	if _, exists := r.defs[name]; !exists {
		r.order = append(r.order, name)
	}
	r.defs[name] = def
}

// Lookup returns the definition bound to name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns all registered names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Eligible returns, in insertion order, the names of machines whose
// eligibility predicate accepts the recipe.
func (r *Registry) Eligible(rec *recipe.Recipe) []string {
	var out []string
	for _, name := range r.order {
		if r.defs[name].IsEligible(rec) {
			out = append(out, name)
		}
	}
	return out
}

// suggestion pairs a candidate name with its edit distance.
type suggestion struct {
	name string
	dist int
}

// Suggest returns up to max registered names close to the misspelled input,
// nearest first. Matching is case-insensitive; candidates further than a
// third of the input length (minimum 2 edits) are discarded.
func (r *Registry) Suggest(name string, max int) []string {
	if max <= 0 || len(r.order) == 0 {
		return nil
	}
	in := strings.ToLower(strings.TrimSpace(name))
	limit := len(in) / 3
	if limit < 2 {
		limit = 2
	}

	cands := make([]suggestion, 0, len(r.order))
	for _, cand := range r.order {
		d := levenshtein.ComputeDistance(in, strings.ToLower(cand))
		if d <= limit {
			cands = append(cands, suggestion{name: cand, dist: d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	if len(cands) > max {
		cands = cands[:max]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}
