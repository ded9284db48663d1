package ports

import (
	"context"

	"pancakelab/internal/core/domain/model/orderlog"
)

// EventPublisher forwards audit events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event orderlog.Event) error
}
