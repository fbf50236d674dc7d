package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/prompter"
	"github.com/soundreel/cli/pkg/service"
)

var (
	profileName        string
	profileDescription string
	profileAvatarPath  string
	profileRefresh     bool
)

var profileCmd = &cobra.Command{
	Use:   "profile [user-id]",
	Short: "View and edit profiles",
	Long:  "Show a profile (your own by default), or a given user's by id.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveProfileTarget(args)
		if err != nil {
			return err
		}

		profileSvc := service.NewProfileService()
		if profileRefresh {
			return profileSvc.Refresh(cmd.Context(), userID)
		}
		return profileSvc.View(cmd.Context(), userID)
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := service.RequireUser()
		if err != nil {
			return err
		}

		return service.NewProfileService().Edit(cmd.Context(), creds.UserID, api.ProfileEdit{
			ProfileName:        profileName,
			ProfileDescription: profileDescription,
			AvatarPath:         profileAvatarPath,
		})
	},
}

var profileGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Pick your genres",
	Long:  "Choose the genres shown on your profile from the fixed palette.",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := service.RequireUser()
		if err != nil {
			return err
		}

		genres := args
		if len(genres) == 0 {
			genres, err = prompter.PromptMultiSelect("Pick your genres:", api.GenrePalette)
			if err != nil {
				return err
			}
		}

		return service.NewProfileService().SetGenres(cmd.Context(), creds.UserID, genres)
	},
}

var profileFollowingCmd = &cobra.Command{
	Use:   "following [user-id]",
	Short: "List who a user follows",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveProfileTarget(args)
		if err != nil {
			return err
		}
		return service.NewProfileService().Following(cmd.Context(), userID)
	},
}

func resolveProfileTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	creds, err := service.RequireUser()
	if err != nil {
		return "", err
	}
	return creds.UserID, nil
}

func init() {
	profileEditCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileEditCmd.Flags().StringVar(&profileDescription, "description", "", "Profile description")
	profileEditCmd.Flags().StringVar(&profileAvatarPath, "avatar", "", "Path to a new avatar image")
	profileCmd.Flags().BoolVar(&profileRefresh, "refresh", false, "Force a fresh load")

	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileGenresCmd)
	profileCmd.AddCommand(profileFollowingCmd)
}
