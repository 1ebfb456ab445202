// Package openclaw provides session sources backed by the OpenClaw registry:
// one shells out to the openclaw CLI, the other reads its session store
// directly.
package openclaw

import (
	"context"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

// Source supplies the session records for one classification pass. A source
// that cannot be reached should return an error; callers degrade to an empty
// report rather than failing the run.
type Source interface {
	Sessions(ctx context.Context) ([]health.SessionRecord, error)
}
