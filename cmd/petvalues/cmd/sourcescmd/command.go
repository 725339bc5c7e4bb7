// Package sourcescmd provides the sources command.
package sourcescmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/petvalues/internal/cmd/output"
	"github.com/agentstation/petvalues/internal/cmd/table"
	"github.com/agentstation/petvalues/pkg/sources"
)

// AppContext defines the interface that the sources command needs from the app.
type AppContext interface {
	SourceConfigs() []sources.Config
}

// NewCommand creates the sources command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "sources",
		GroupID: "management",
		Short:   "List configured value sources",
		Long: `Sources lists the configured value sources in priority order. When two
sources report different rarities for a pet, the earlier source wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			cfgs := app.SourceConfigs()

			fmtr := output.NewFormatter(output.DetectFormat(string(outFormat)))
			if _, isTable := fmtr.(*output.TableFormatter); isTable {
				return fmtr.Format(cmd.OutOrStdout(), table.SourcesToTableData(cfgs))
			}
			return fmtr.Format(cmd.OutOrStdout(), cfgs)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: table, json, yaml")

	return cmd
}
