// Package rabbitmq publishes order audit events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are persistent JSON,
// routed by RoutingKey. A Publisher is safe for concurrent use; publishes are
// serialised because an AMQP channel is not.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url string, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := NewPublisher(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	p.conn = conn
	return p, nil
}

// NewPublisher declares exchange on an already open channel.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("exchange name is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Publish sends one event.
func (p *Publisher) Publish(ctx context.Context, event orderlog.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(fromDomain(event))
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(event.Kind()), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt(),
		Type:         event.Kind().String(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s for order %s: %w", event.Kind(), event.OrderID(), err)
	}

	p.logger.DebugContext(ctx, "event published", "kind", event.Kind().String(), "orderId", event.OrderID().String())
	return nil
}

// Close closes the channel and, when the publisher dialled it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
