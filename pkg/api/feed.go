package api

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// GetFeed retrieves the feed page for a user
func GetFeed(ctx context.Context, userID string) (*FeedResponse, error) {
	logger.Debug("Fetching feed", "user_id", userID)

	var response FeedResponse

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetResult(&response).
		Get(fmt.Sprintf("/api/feed/get_feed/%s", userID))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to fetch feed")
	}

	return &response, nil
}
