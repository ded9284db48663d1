package jobs

import (
	"context"
	"log/slog"
	"sync"

	"pancakelab/internal/core/ports"
)

// EventRelayJob forwards audit events to the broker in log order. It keeps a
// cursor into the log and only advances it past events the publisher accepted.
type EventRelayJob struct {
	scheduler
	events    ports.EventLog
	publisher ports.EventPublisher

	mu     sync.Mutex
	cursor int
}

func NewEventRelayJob(
	events ports.EventLog,
	publisher ports.EventPublisher,
	schedule string,
	logger *slog.Logger,
) *EventRelayJob {
	return &EventRelayJob{
		scheduler: newScheduler("event_relay_job", schedule, logger),
		events:    events,
		publisher: publisher,
	}
}

func (j *EventRelayJob) Start() error {
	return j.start(func(ctx context.Context) {
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.WarnContext(ctx, "Event relay stopped early, will retry", "cursor", j.Cursor(), "error", err)
		}
	})
}

// RunOnce publishes the events appended since the last successful publish and
// returns how many it published. It stops at the first failure.
func (j *EventRelayJob) RunOnce(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	published := 0
	for _, event := range j.events.Since(j.cursor) {
		if err := j.publisher.Publish(ctx, event); err != nil {
			return published, err
		}
		j.cursor++
		published++
	}

	return published, nil
}

// Cursor is the log position of the next event to publish.
func (j *EventRelayJob) Cursor() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.cursor
}
