package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager. Jobs start in the given order and stop in reverse.
func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{
		jobs: jobs,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start, after stopping the ones already running.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	return nil
}

// StopAll stops the running jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
