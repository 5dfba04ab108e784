package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	returnsBacklogJob *ReturnsBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	unclaimedReturns UnclaimedReturnsLister,
	backlogSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		returnsBacklogJob: NewReturnsBacklogJob(unclaimedReturns, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.returnsBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start returns backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.returnsBacklogJob.Stop()
}
