// Package importcmd provides the import command.
package importcmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/petvalues"
	"github.com/agentstation/petvalues/internal/cmd/hints"
	"github.com/agentstation/petvalues/pkg/dataset"
	"github.com/agentstation/petvalues/pkg/logging"
	"github.com/agentstation/petvalues/pkg/save"
)

// AppContext defines the interface that the import command needs from the app.
type AppContext interface {
	Importer(opts ...petvalues.Option) (petvalues.Importer, error)
	Logger() *zerolog.Logger
}

// Flags holds the import command flags.
type Flags struct {
	CatalogDir  string
	Output      string
	Extensions  []string
	ImagePrefix string
	Format      string
	DryRun      bool
}

// NewCommand creates the import command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "import",
		GroupID: "core",
		Short:   "Fetch source values and write the dataset",
		Long: `Import fetches every configured value source, reconciles the records
against the local image catalog, and writes the merged dataset.

A failing source contributes nothing and is reported as a warning. A missing
catalog directory or an unwritable output is an error and leaves any existing
dataset untouched.`,
		Example: `  petvalues import                              # pets/ -> data/pets.json
  petvalues import --catalog-dir assets/pets    # custom catalog
  petvalues import --output data/pets.yaml      # YAML output
  petvalues import --dry-run | jq '.pets[0]'    # print instead of writing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.CatalogDir, "catalog-dir", "", "directory of pet images (default from config: pets)")
	cmd.Flags().StringVar(&flags.Output, "output", "", "dataset file (default from config: data/pets.json)")
	cmd.Flags().StringSliceVar(&flags.Extensions, "ext", nil, "qualifying image extensions (default .png)")
	cmd.Flags().StringVar(&flags.ImagePrefix, "image-prefix", "", "prefix of image references (default: catalog dir)")
	cmd.Flags().StringVar(&flags.Format, "format", "", "dataset format: json or yaml (default: from output extension)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the dataset to stdout instead of writing it")

	return cmd
}

// Options converts changed flags into importer options.
func (f *Flags) Options(cmd *cobra.Command) ([]petvalues.Option, error) {
	var opts []petvalues.Option
	if cmd.Flags().Changed("catalog-dir") {
		opts = append(opts, petvalues.WithCatalogDir(f.CatalogDir))
	}
	if cmd.Flags().Changed("output") {
		opts = append(opts, petvalues.WithOutputPath(f.Output))
	}
	if cmd.Flags().Changed("ext") {
		opts = append(opts, petvalues.WithExtensions(f.Extensions...))
	}
	if cmd.Flags().Changed("image-prefix") {
		opts = append(opts, petvalues.WithImagePrefix(f.ImagePrefix))
	}
	if f.Format != "" {
		format, err := save.ParseFormat(f.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, petvalues.WithFormat(format))
	}
	if f.DryRun {
		opts = append(opts, petvalues.WithDryRun(cmd.OutOrStdout()))
	}
	return opts, nil
}

func run(cmd *cobra.Command, app AppContext, flags *Flags) error {
	opts, err := flags.Options(cmd)
	if err != nil {
		return err
	}

	imp, err := app.Importer(opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	imp.OnPetUpdated(func(old, new dataset.Pet) {
		if old.Value != new.Value {
			logger.Info().
				Str("pet", new.Name).
				Float64("from", old.Value).
				Float64("to", new.Value).
				Msg("Value changed")
		}
	})

	result, err := imp.Import(ctx)
	if err != nil {
		return err
	}

	if result.DryRun {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %s\n", result.Output, result.Summary())

	return hints.Write(cmd.ErrOrStderr(), hints.NewRegistry().GetHints(hints.Context{
		Command:       "import",
		Succeeded:     true,
		Output:        result.Output,
		Pets:          len(result.Dataset.Pets),
		Valued:        result.Dataset.Valued(),
		Sources:       len(result.Sources),
		FailedSources: len(result.FailedSources()),
	}))
}
