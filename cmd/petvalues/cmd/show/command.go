// Package show provides the show command, which renders a dataset file.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/petvalues/internal/cmd/output"
	"github.com/agentstation/petvalues/internal/cmd/table"
	"github.com/agentstation/petvalues/pkg/dataset"
)

// AppContext defines the interface that the show command needs from the app.
type AppContext interface {
	DatasetPath() string
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		format string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:     "show [path]",
		GroupID: "core",
		Short:   "Display a dataset",
		Long: `Show reads a dataset file and prints its pets.

In a terminal the pets are shown as a table; when piped the output is JSON.`,
		Example: `  petvalues show                           # configured dataset
  petvalues show data/pets.json --sort value
  petvalues show --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.DatasetPath()
			if len(args) == 1 {
				path = args[0]
			}

			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			key, err := table.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			ds, err := dataset.Load(path)
			if err != nil {
				return err
			}
			sorted := *ds
			sorted.Pets = table.SortPets(ds.Pets, key)

			fmtr := output.NewFormatter(output.DetectFormat(string(outFormat)))
			if _, isTable := fmtr.(*output.TableFormatter); isTable {
				return fmtr.Format(cmd.OutOrStdout(), table.PetsToTableData(sorted.Pets))
			}
			return fmtr.Format(cmd.OutOrStdout(), sorted)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: table, json, yaml (default: table in a terminal, json otherwise)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort pets by: value, name (default: catalog order)")

	return cmd
}
