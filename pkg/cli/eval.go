package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/factorlab/craftbench/pkg/catalog"
	"github.com/factorlab/craftbench/pkg/engine"
	"github.com/factorlab/craftbench/pkg/machine"
	"github.com/factorlab/craftbench/pkg/recipe"
	"github.com/factorlab/craftbench/pkg/serializer"
)

func evalCmd() *cli.Command {
	return &cli.Command{
		Name:                  "eval",
		EnableShellCompletion: true,
		Usage:                 "Evaluate machine throughput for a recipe",
		Description: `Evaluate one machine against one recipe, computing processing speed,
power draw, parallel operation count, applied overclocks, and the rewritten
item list.

When --machine is omitted, every machine eligible for the recipe is
evaluated with default choices.

The voltage tier accepts either a tier name (LV, MV, HV, ...) or a numeric
index. It defaults to the recipe's native tier.

Choices are repeatable name=value pairs, e.g. --choice coil=3. Omitted
choices take their defaults; values outside a choice's domain after
constraint enforcement fail the evaluation.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "recipe",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Recipe ID to evaluate",
			},
			&cli.StringFlag{
				Name:    "machine",
				Aliases: []string{"m"},
				Usage:   "Machine name (omit to evaluate all eligible machines)",
			},
			&cli.StringFlag{
				Name:  "tier",
				Usage: "Voltage tier name or index (default: the recipe's tier)",
			},
			&cli.IntFlag{
				Name:    "budget",
				Aliases: []string{"b"},
				Usage:   "Overclock tier budget",
			},
			&cli.StringSliceFlag{
				Name:    "choice",
				Aliases: []string{"c"},
				Usage:   "Machine choice as name=value (can be repeated)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			store, err := recipe.LoadStore()
			if err != nil {
				return fmt.Errorf("failed to load recipe store: %w", err)
			}
			rec, err := store.Get(cmd.String("recipe"))
			if err != nil {
				return fmt.Errorf("failed to resolve recipe %q: %w", cmd.String("recipe"), err)
			}

			tier, err := parseTierArg(cmd.String("tier"), rec.VoltageTier)
			if err != nil {
				return err
			}

			choices, err := parseChoiceArgs(cmd.StringSlice("choice"))
			if err != nil {
				return err
			}

			reg := catalog.New()
			eng := engine.New(reg)
			budget := int(cmd.Int("budget"))

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			machineName := cmd.String("machine")
			if machineName == "" {
				evals, err := eng.EvaluateAll(ctx, rec, tier, budget)
				if err != nil {
					return fmt.Errorf("evaluation failed: %w", err)
				}
				return ser.Serialize(ctx, evals)
			}

			ev, err := eng.Evaluate(ctx, engine.Request{
				Machine:     resolveMachineName(reg, machineName),
				Recipe:      rec,
				VoltageTier: tier,
				Choices:     choices,
				TierBudget:  budget,
			})
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}
			return ser.Serialize(ctx, ev)
		},
	}
}

// resolveMachineName forgives casing mistakes in user-supplied machine names
// by retrying the lookup with the catalog's title-cased convention. Unknown
// names pass through so the engine can attach spelling suggestions.
func resolveMachineName(reg *machine.Registry, name string) string {
	if _, ok := reg.Lookup(name); ok {
		return name
	}
	titled := cases.Title(language.English).String(name)
	if _, ok := reg.Lookup(titled); ok {
		return titled
	}
	return name
}

// parseTierArg resolves a tier argument that is either a tier display name
// or a numeric index. An empty argument resolves to def.
func parseTierArg(arg string, def int) (int, error) {
	if arg == "" {
		return def, nil
	}
	if tier, ok := recipe.ParseTier(arg); ok {
		return tier, nil
	}
	tier, err := strconv.Atoi(arg)
	if err != nil || tier < 0 || tier >= recipe.TierCount {
		return 0, fmt.Errorf("invalid tier %q (expected a tier name or an index in [0,%d))", arg, recipe.TierCount)
	}
	return tier, nil
}

// parseChoiceArgs parses repeated name=value choice flags.
func parseChoiceArgs(args []string) (map[string]float64, error) {
	if len(args) == 0 {
		return nil, nil
	}
	// Choice names in the catalog are lowercase; fold user input to match.
	caser := cases.Fold()
	choices := make(map[string]float64, len(args))
	for _, arg := range args {
		name, valueStr, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid choice %q (expected name=value)", arg)
		}
		name = caser.String(strings.TrimSpace(name))
		value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid choice value in %q: %w", arg, err)
		}
		choices[name] = value
	}
	return choices, nil
}
