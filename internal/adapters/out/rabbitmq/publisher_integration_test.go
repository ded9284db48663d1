//go:build integration

package rabbitmq_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pancakelab/internal/adapters/out/rabbitmq"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/orderlog"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

const exchange = "pancakelab.events.test"

// PublisherIntegrationTestSuite publishes to a real broker started in a container.
type PublisherIntegrationTestSuite struct {
	suite.Suite
	container *tcrabbitmq.RabbitMQContainer
	amqpURL   string
}

func (suite *PublisherIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcrabbitmq.Run(ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	suite.amqpURL, err = container.AmqpURL(ctx)
	suite.Require().NoError(err)
}

func (suite *PublisherIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PublisherIntegrationTestSuite) TestPublish_RoutesByKind() {
	ctx := context.Background()

	publisher, err := rabbitmq.Dial(suite.amqpURL, exchange, nil)
	suite.Require().NoError(err)
	defer func() { suite.NoError(publisher.Close()) }()

	conn, err := amqp.Dial(suite.amqpURL)
	suite.Require().NoError(err)
	defer conn.Close()
	ch, err := conn.Channel()
	suite.Require().NoError(err)

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(ch.QueueBind(queue.Name, "order.order-delivered", exchange, false, nil))

	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	suite.Require().NoError(err)

	addr, err := kernel.NewAddress(3, 301)
	suite.Require().NoError(err)
	id := kernel.NewUUID()

	added, err := orderlog.NewItemAddedEvent(id, time.Now().UTC(), "Delicious pancake with hazelnuts!")
	suite.Require().NoError(err)
	delivered, err := orderlog.NewOrderDeliveredEvent(id, time.Now().UTC(), 1, addr)
	suite.Require().NoError(err)

	suite.Require().NoError(publisher.Publish(ctx, added))
	suite.Require().NoError(publisher.Publish(ctx, delivered))

	select {
	case msg := <-deliveries:
		var dto rabbitmq.EventDTO
		suite.Require().NoError(json.Unmarshal(msg.Body, &dto))
		suite.Equal("order-delivered", dto.Kind)
		suite.Equal(id.String(), dto.OrderID)
		suite.Equal(delivered.Details(), dto.Details)
	case <-time.After(10 * time.Second):
		suite.Fail("no message received")
	}
}

func TestPublisherIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherIntegrationTestSuite))
}
