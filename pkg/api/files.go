package api

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
	"github.com/soundreel/cli/pkg/media"
)

// GetFile retrieves the raw bytes of a stored media file
func GetFile(ctx context.Context, kind media.Kind, fileID string) ([]byte, error) {
	logger.Debug("Fetching media file", "kind", kind, "file_id", fileID)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/files/%s/%s", kind, fileID))

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to fetch media file")
	}

	return resp.Body(), nil
}
