package api

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// GetPost retrieves a post by id
func GetPost(ctx context.Context, postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var post Post

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetResult(&post).
		Get(fmt.Sprintf("/api/post/%s", postID))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to fetch post")
	}

	return &post, nil
}

// UpdatePost PUTs a partial JSON body to patch server-side post fields,
// commonly {"likesCount": n}
func UpdatePost(ctx context.Context, postID string, fields map[string]interface{}) error {
	logger.Debug("Updating post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetBody(fields).
		Put(fmt.Sprintf("/api/post/%s", postID))

	if err != nil {
		return errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return errors.HTTPError(resp.StatusCode(), "failed to update post")
	}

	return nil
}
