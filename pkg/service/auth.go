package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/credentials"
	"github.com/soundreel/cli/pkg/formatter"
	"github.com/soundreel/cli/pkg/logger"
)

// AuthService handles signup, login and the persisted session
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Signup registers a new account and signs the user in
func (as *AuthService) Signup(ctx context.Context, username, email, password string) error {
	logger.Debug("Signing up", "username", username)

	resp, err := api.Signup(ctx, api.SignupRequest{
		UserName: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		// auth is the one flow where a network failure is shown to the
		// user instead of being absorbed
		return fmt.Errorf("signup failed: %w", err)
	}

	if err := credentials.Save(&credentials.Credentials{
		UserID:    resp.UserID,
		UserName:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	formatter.PrintSuccess("Welcome to Soundreel, %s!", username)
	return nil
}

// Login signs an existing user in
func (as *AuthService) Login(ctx context.Context, email, password string) error {
	logger.Debug("Logging in", "email", email)

	resp, err := api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	user, err := api.GetUser(ctx, resp.UserID)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}

	if err := credentials.Save(&credentials.Credentials{
		UserID:    resp.UserID,
		UserName:  user.UserName,
		Email:     email,
		CreatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	formatter.PrintSuccess("Logged in as %s", user.UserName)
	return nil
}

// Logout removes the persisted session
func (as *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if !creds.IsValid() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	formatter.PrintSuccess("Logged out.")
	return nil
}

// Status shows the current session
func (as *AuthService) Status() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if !creds.IsValid() {
		fmt.Println("Not logged in. Run 'soundreel auth login' to sign in.")
		return nil
	}

	fmt.Printf("Logged in as %s (%s)\n", creds.UserName, creds.Email)
	return nil
}

// RequireUser returns the signed-in user id or an instructive error
func RequireUser() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if !creds.IsValid() {
		return nil, fmt.Errorf("not logged in; run 'soundreel auth login' first")
	}
	return creds, nil
}
