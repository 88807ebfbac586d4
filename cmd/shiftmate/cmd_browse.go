package main

import (
	"github.com/spf13/cobra"

	"github.com/jhrahman/shiftmate/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit weeks in an interactive terminal view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			return tui.Run(cmd.Context(), a.roster())
		})
	},
}
