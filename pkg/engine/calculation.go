package engine

import (
	"github.com/factorlab/craftbench/pkg/recipe"
)

// calculation is the per-evaluation computation context handed to
// coefficients and hooks. It is owned by a single evaluation and never
// shared across goroutines.
type calculation struct {
	rec     *recipe.Recipe
	tier    int
	choices map[string]float64
	budget  int
	inputs  int
	outputs int
}

func newCalculation(rec *recipe.Recipe, tier int, choices map[string]float64, budget int) *calculation {
	return &calculation{
		rec:     rec,
		tier:    tier,
		choices: choices,
		budget:  budget,
		inputs:  rec.InputCount(),
		outputs: rec.OutputCount(),
	}
}

func (c *calculation) Recipe() *recipe.Recipe      { return c.rec }
func (c *calculation) VoltageTier() int            { return c.tier }
func (c *calculation) Choices() map[string]float64 { return c.choices }
func (c *calculation) Choice(name string) float64  { return c.choices[name] }
func (c *calculation) ItemInputs() int             { return c.inputs }
func (c *calculation) ItemOutputs() int            { return c.outputs }
func (c *calculation) TierBudget() int             { return c.budget }
