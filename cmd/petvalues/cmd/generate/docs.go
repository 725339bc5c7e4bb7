package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/petvalues/internal/cmd/table"
	"github.com/agentstation/petvalues/internal/tools/docs"
	"github.com/agentstation/petvalues/pkg/dataset"
)

// NewDocsCommand creates the generate docs command.
func NewDocsCommand(app AppContext) *cobra.Command {
	var (
		out    string
		title  string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "docs [path]",
		Short: "Generate a markdown value table",
		Long: `Docs renders a dataset as a markdown document with a summary, a value
table and per-rarity counts.`,
		Example: `  petvalues generate docs
  petvalues generate docs data/pets.json --out docs/VALUES.md
  petvalues generate docs --sort name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.DatasetPath()
			if len(args) == 1 {
				path = args[0]
			}

			key := table.SortValue
			if sortBy != "" {
				var err error
				if key, err = table.ParseSortKey(sortBy); err != nil {
					return err
				}
			}

			ds, err := dataset.Load(path)
			if err != nil {
				return err
			}

			generator := docs.New(docs.WithTitle(title), docs.WithSort(key))
			if out == "-" {
				return generator.Write(cmd.OutOrStdout(), ds)
			}
			if err := generator.Generate(cmd.Context(), ds, out); err != nil {
				return fmt.Errorf("generating docs: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s from %s\n", out, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "VALUES.md", "output file, or - for stdout")
	cmd.Flags().StringVar(&title, "title", docs.DefaultTitle, "document title")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort pets by: value, name (default: value)")

	return cmd
}
