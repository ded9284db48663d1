package commands_test

import (
	"context"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/orderlog"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Find(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Append(e orderlog.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockEventLog) EventsForOrder(id kernel.UUID) []orderlog.Event {
	args := m.Called(id)
	return args.Get(0).([]orderlog.Event)
}

func (m *MockEventLog) EventsByKind(kind orderlog.Kind) []orderlog.Event {
	args := m.Called(kind)
	return args.Get(0).([]orderlog.Event)
}

func (m *MockEventLog) All() []orderlog.Event {
	args := m.Called()
	return args.Get(0).([]orderlog.Event)
}

func (m *MockEventLog) Since(offset int) []orderlog.Event {
	args := m.Called(offset)
	return args.Get(0).([]orderlog.Event)
}
