package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"oleum/internal/assignment"
	"oleum/internal/repository"
	"oleum/internal/validation"
)

func newDeleteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete catalog records and every assignment referencing them",
	}

	for _, target := range []struct {
		use    string
		short  string
		remove func(m *assignment.Manager) func(ctx context.Context, id string) validation.Result
	}{
		{use: "oil ID", short: "Delete an essential oil", remove: func(m *assignment.Manager) func(context.Context, string) validation.Result {
			return m.CascadeDeleteEssentialOil
		}},
		{use: "effect ID", short: "Delete an effect", remove: func(m *assignment.Manager) func(context.Context, string) validation.Result {
			return m.CascadeDeleteEffect
		}},
		{use: "molecule ID", short: "Delete a molecule", remove: func(m *assignment.Manager) func(context.Context, string) validation.Result {
			return m.CascadeDeleteMolecule
		}},
	} {
		target := target
		cmd.AddCommand(&cobra.Command{
			Use:   target.use,
			Short: target.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.open(cmd.Context(), a)
				if err != nil {
					return err
				}
				defer c.close()

				manager := assignment.NewManager(repository.New(c.db), a.logger(cmd))
				result := target.remove(manager)(cmd.Context(), args[0])
				if result.HasErrors() {
					if err := writeOutput(cmd.OutOrStdout(), a.outputFmt, result); err != nil {
						return err
					}
					return fmt.Errorf("delete %s: %s", args[0], result.First())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			},
		})
	}
	return cmd
}
