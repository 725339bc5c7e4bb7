// Package generate provides the generate command and its subcommands.
package generate

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// AppContext defines the interface that generate commands need from the app.
type AppContext interface {
	DatasetPath() string
	Logger() *zerolog.Logger
}

// NewCommand creates the generate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "management",
		Short:   "Generate artifacts from a dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewDocsCommand(app))
	return cmd
}
