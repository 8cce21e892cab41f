package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/factorlab/craftbench/pkg/catalog"
	"github.com/factorlab/craftbench/pkg/recipe"
	"github.com/factorlab/craftbench/pkg/serializer"
)

// machineListing is the CLI-facing shape of one machine definition.
type machineListing struct {
	Name    string   `json:"name" yaml:"name"`
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Info    string   `json:"info,omitempty" yaml:"info,omitempty"`
}

func machinesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "machines",
		EnableShellCompletion: true,
		Usage:                 "List registered machine definitions",
		Description: `List every machine in the catalog with its adjustable choices.

With --recipe, only machines eligible for that recipe are listed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "recipe",
				Aliases: []string{"r"},
				Usage:   "Only list machines eligible for this recipe ID",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			reg := catalog.New()
			names := reg.Names()

			if recipeID := cmd.String("recipe"); recipeID != "" {
				store, err := recipe.LoadStore()
				if err != nil {
					return fmt.Errorf("failed to load recipe store: %w", err)
				}
				rec, err := store.Get(recipeID)
				if err != nil {
					return fmt.Errorf("failed to resolve recipe %q: %w", recipeID, err)
				}
				names = reg.Eligible(rec)
			}

			listings := make([]machineListing, 0, len(names))
			for _, n := range names {
				def, ok := reg.Lookup(n)
				if !ok {
					continue
				}
				var choices []string
				for choice := range def.Choices {
					choices = append(choices, choice)
				}
				sort.Strings(choices)
				listings = append(listings, machineListing{
					Name:    n,
					Choices: choices,
					Info:    def.Info,
				})
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, listings)
		},
	}
}

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "List known recipe identifiers",
		Flags: []cli.Flag{
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

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, store.IDs())
		},
	}
}
