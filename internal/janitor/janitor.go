// Package janitor contains interface of background cleaner of expired data.
package janitor

import (
	"context"

	"github.com/sparkdate/spark/internal/health"
)

// Janitor periodically removes expired sessions, auth codes and discovery sessions.
type Janitor interface {
	health.Pinger

	Run(ctx context.Context) error
}
