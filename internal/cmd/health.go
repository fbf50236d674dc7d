package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/service"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewHealthService().Check(cmd.Context())
	},
}
