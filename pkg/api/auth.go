package api

import (
	"context"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// Signup registers a new account and returns the created user id
func Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	logger.Debug("Signing up", "user_name", req.UserName)

	var response AuthResponse

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&response).
		Post("/auth/signup")

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.AuthError("Signup failed")
	}

	return &response, nil
}

// Login exchanges credentials for the account's user id
func Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger.Debug("Logging in", "email", email)

	var response AuthResponse

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetBody(LoginRequest{Email: email, Password: password}).
		SetResult(&response).
		Post("/auth/login")

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.AuthError("Invalid email or password")
	}

	return &response, nil
}
