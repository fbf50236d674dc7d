package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/prompter"
	"github.com/soundreel/cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Sign up, log in, and manage your Soundreel session",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Soundreel account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := prompter.PromptString("Username: ")
		if err != nil {
			return err
		}
		email, err := prompter.PromptString("Email: ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := prompter.PromptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		return service.NewAuthService().Signup(cmd.Context(), username, email, password)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Soundreel",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := prompter.PromptString("Email: ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}

		return service.NewAuthService().Login(cmd.Context(), email, password)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of Soundreel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Logout()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService().Status()
	},
}

func init() {
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)
}
