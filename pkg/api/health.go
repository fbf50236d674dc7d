package api

import (
	"context"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// Health probes backend connectivity; any 2xx means reachable
func Health(ctx context.Context) error {
	logger.Debug("Probing backend health")

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Get("/health")

	if err != nil {
		return errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return errors.HTTPError(resp.StatusCode(), "health probe failed")
	}

	return nil
}
