package ports

import (
	"context"

	"github.com/jobsift/jobsift/internal/core"
)

// Intake defines the interface for a message intake frontend
type Intake interface {
	// ProcessMessage runs one raw message through the tracking pipeline
	ProcessMessage(ctx context.Context, msg *core.RawMessage) (*core.JobEmailRecord, error)

	// Start starts the intake
	Start() error

	// Stop stops the intake
	Stop() error
}
