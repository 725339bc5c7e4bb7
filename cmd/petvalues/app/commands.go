package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/petvalues/cmd/petvalues/cmd/generate"
	"github.com/agentstation/petvalues/cmd/petvalues/cmd/importcmd"
	"github.com/agentstation/petvalues/cmd/petvalues/cmd/show"
	"github.com/agentstation/petvalues/cmd/petvalues/cmd/sourcescmd"
	"github.com/agentstation/petvalues/cmd/petvalues/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(importcmd.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(sourcescmd.NewCommand(a))
	rootCmd.AddCommand(generate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
