package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/service"
)

var searchGenre string

var searchCmd = &cobra.Command{
	Use:   "search [username]",
	Short: "Find artists",
	Long:  "Look up an artist by exact username, or list artists by genre with --genre.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searchSvc := service.NewSearchService()

		if searchGenre != "" {
			return searchSvc.ByGenre(cmd.Context(), searchGenre)
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return searchSvc.ByUsername(cmd.Context(), args[0])
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchGenre, "genre", "", "List artists in a genre")
}
