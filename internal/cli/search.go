package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"oleum/internal/repository"
	"oleum/internal/search"
	"oleum/models"
)

const defaultDiscomfort = 4

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search EFFECT[=DISCOMFORT]...",
		Short: "Rank essential oils for the given effects",
		Long: `Search essential oils by effect name. Each argument names one effect,
optionally followed by the discomfort (1-4) it should be weighted with;
the default is 4.

Examples:
  oleumctl search "Wirkung gegen Schmerzen=3" "Wirkung gegen Narben=2"
  oleumctl search "Wirkung gegen Schmerzen" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseSearchArgs(args)
			if err != nil {
				return err
			}
			c, err := a.open(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer c.close()

			engine := search.NewEngine(repository.New(c.db),
				search.WithLocale(c.locale),
				search.WithLogger(a.logger(cmd)),
			)
			result, err := engine.SearchEssentialOilsByEffects(cmd.Context(), items)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), a.outputFmt, result)
		},
	}
}

// parseSearchArgs splits "name=discomfort" on the last '='. Rows the search
// would ignore are passed through unchanged.
func parseSearchArgs(args []string) ([]models.SearchEffectItem, error) {
	items := make([]models.SearchEffectItem, 0, len(args))
	for _, arg := range args {
		name, value := arg, ""
		if i := strings.LastIndex(arg, "="); i >= 0 {
			name, value = arg[:i], arg[i+1:]
		}
		discomfort := defaultDiscomfort
		if strings.TrimSpace(value) != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid discomfort in %q: %w", arg, err)
			}
			discomfort = parsed
		}
		items = append(items, models.SearchEffectItem{SearchEffectText: name, DiscomfortValue: discomfort})
	}
	return items, nil
}
