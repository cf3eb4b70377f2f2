package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oleum/internal/importer"
)

func newImportCommand(a *app) *cobra.Command {
	var (
		kindFlag string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import assignment sheets",
		Long: `Import parent;child;strength sheets and replace the assignments of every
parent they name. Missing oils, effects and molecules are created.

Examples:
  oleumctl import --kind=oil-effects wirkungen.csv
  oleumctl import --kind=oil-molecules --dry-run analyse.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := importer.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := a.open(cmd.Context(), a)
			if err != nil {
				return err
			}
			defer c.close()

			im := importer.New(c.db, a.logger(cmd))
			reports := make([]importer.Report, 0, len(args))
			rejected := false
			for _, path := range args {
				report, err := im.ImportFile(cmd.Context(), kind, path, dryRun)
				if err != nil {
					return err
				}
				reports = append(reports, report)
				rejected = rejected || report.Errors.HasErrors()
			}
			if err := writeOutput(cmd.OutOrStdout(), a.outputFmt, reports); err != nil {
				return err
			}
			if rejected {
				return fmt.Errorf("import rejected; nothing was written")
			}
			return nil
		},
	}

	kinds := make([]string, 0, len(importer.Kinds))
	for _, kind := range importer.Kinds {
		kinds = append(kinds, string(kind))
	}
	cmd.Flags().StringVar(&kindFlag, "kind", string(importer.OilEffects), "sheet kind ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and report without writing")
	return cmd
}
