package api

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// GetUser retrieves a user by id
func GetUser(ctx context.Context, userID string) (*User, error) {
	logger.Debug("Fetching user", "user_id", userID)

	var user User

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/api/user/%s", userID))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to fetch user")
	}

	return &user, nil
}

// UpdateUser PUTs a partial JSON body to patch server-side user fields,
// e.g. {"totalLikeCount": 12} or {"genres": [...]}
func UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) error {
	logger.Debug("Updating user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetBody(fields).
		Put(fmt.Sprintf("/api/user/%s", userID))

	if err != nil {
		return errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return errors.HTTPError(resp.StatusCode(), "failed to update user")
	}

	return nil
}

// GetUserByUsername looks up a single user by exact username; a 404 maps
// to a not-found error the caller can surface as "no such user"
func GetUserByUsername(ctx context.Context, name string) (*User, error) {
	logger.Debug("Looking up user by name", "user_name", name)

	var user User

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/api/user/username/%s", name))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if resp.StatusCode() == 404 {
		return nil, errors.NotFoundError("User", name)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to look up user")
	}

	return &user, nil
}

// SearchUsersByGenre retrieves users tagged with a genre
func SearchUsersByGenre(ctx context.Context, genre string) ([]User, error) {
	logger.Debug("Searching users by genre", "genre", genre)

	var users []User

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetResult(&users).
		Get(fmt.Sprintf("/api/user/search-by-genre/%s", genre))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to search by genre")
	}

	return users, nil
}
