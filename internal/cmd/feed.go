package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/service"
)

var feedShowOnly bool

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Scroll your feed",
	Long: `Open an interactive feed session: the current post's audio plays
while you scroll, like, and expand captions. Use --list to print the
page and exit instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := service.RequireUser()
		if err != nil {
			return err
		}

		// the app refuses to start a session against a dead backend
		if err := service.NewHealthService().Probe(cmd.Context()); err != nil {
			return err
		}

		feedSvc := service.NewFeedService(creds.UserID)
		if feedShowOnly {
			return feedSvc.Show(cmd.Context())
		}
		return feedSvc.Run(cmd.Context(), os.Stdin)
	},
}

func init() {
	feedCmd.Flags().BoolVar(&feedShowOnly, "list", false, "Print the feed page without starting a session")
}
