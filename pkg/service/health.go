package service

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/config"
	"github.com/soundreel/cli/pkg/formatter"
	"github.com/soundreel/cli/pkg/logger"
)

// HealthService probes the backend before interactive flows start
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check probes the backend and reports the result
func (hs *HealthService) Check(ctx context.Context) error {
	logger.Debug("Probing backend", "origin", config.BaseURL())

	if err := api.Health(ctx); err != nil {
		return fmt.Errorf("backend at %s is not reachable: %w", config.BaseURL(), err)
	}

	formatter.PrintSuccess("Backend at %s is up.", config.BaseURL())
	return nil
}

// Probe is the silent variant used before interactive sessions
func (hs *HealthService) Probe(ctx context.Context) error {
	return api.Health(ctx)
}
