package recipe

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var recipeFS embed.FS

var (
	storeOnce   sync.Once
	cachedStore *Store
	cachedErr   error
)

// Store holds the loaded recipe fixtures indexed by ID.
type Store struct {
	recipes map[string]*Recipe
	order   []string
}

// recipeFile is the on-disk shape of one recipe data file.
type recipeFile struct {
	Recipes []*Recipe `yaml:"recipes"`
}

// LoadStore loads and caches the embedded recipe store. The store is loaded
// once per process; subsequent calls return the cached instance.
func LoadStore() (*Store, error) {
	storeOnce.Do(func() {
		storeCacheMisses.Inc()
		cachedStore, cachedErr = loadStoreFromFS(recipeFS)
	})
	if cachedErr != nil {
		return nil, cachedErr
	}
	storeCacheHits.Inc()
	return cachedStore, nil
}

func loadStoreFromFS(fsys fs.FS) (*Store, error) {
	store := &Store{recipes: make(map[string]*Recipe)}

	err := fs.WalkDir(fsys, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		content, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			return fmt.Errorf("failed to read recipe file %s: %w", path, readErr)
		}

		var file recipeFile
		if unmarshalErr := yaml.Unmarshal(content, &file); unmarshalErr != nil {
			return fmt.Errorf("failed to parse recipe file %s: %w", path, unmarshalErr)
		}

		for _, r := range file.Recipes {
			if r == nil || r.ID == "" {
				return fmt.Errorf("recipe file %s contains a recipe without an id", path)
			}
			normalize(r)
			if _, dup := store.recipes[r.ID]; dup {
				return fmt.Errorf("duplicate recipe id %q in %s", r.ID, path)
			}
			store.recipes[r.ID] = r
			store.order = append(store.order, r.ID)
		}
		return nil
	})
	if err != nil {
		return nil, cberrors.Wrap(cberrors.ErrCodeInternal, "failed to load recipe store", err)
	}

	sort.Strings(store.order)
	return store, nil
}

// normalize applies load-time defaults: an omitted or zero probability means
// the item is always produced.
func normalize(r *Recipe) {
	for i := range r.Items {
		if r.Items[i].Probability == 0 {
			r.Items[i].Probability = 1
		}
	}
}

// Get returns the recipe with the given ID.
func (s *Store) Get(id string) (*Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return nil, cberrors.NewWithContext(
			cberrors.ErrCodeNotFound,
			"recipe not found",
			map[string]any{"recipe": id},
		)
	}
	return r, nil
}

// IDs returns all recipe IDs in sorted order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of recipes in the store.
func (s *Store) Len() int {
	return len(s.recipes)
}
