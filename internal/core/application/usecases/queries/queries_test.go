package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pancakelab/internal/adapters/out/memory/orderrepo"
	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/orderlog"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingOrderRepository struct {
	mock.Mock
	*orderrepo.MemoryOrderRepository
}

func (m *failingOrderRepository) Find(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(0)
}

func (m *failingOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return nil, args.Error(0)
}

func newOrderWith(t *testing.T, repo *orderrepo.MemoryOrderRepository, names ...pancake.IngredientName) *order.Order {
	t.Helper()

	addr, err := kernel.NewAddress(7, 712)
	require.NoError(t, err)
	o, err := order.NewOrder(addr)
	require.NoError(t, err)

	for _, name := range names {
		ingredient, err := pancake.NewIngredient(name)
		require.NoError(t, err)
		item, err := pancake.NewPancake([]pancake.Ingredient{ingredient})
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}

	require.NoError(t, repo.Save(t.Context(), o))
	return o
}

func TestViewOrderQueryHandler_Handle(t *testing.T) {
	repo := orderrepo.NewMemoryOrderRepository()
	h := queries.NewViewOrderQueryHandler(repo)

	t.Run("should return descriptions in insertion order", func(t *testing.T) {
		o := newOrderWith(t, repo, pancake.Hazelnuts, pancake.DarkChocolate)
		query, err := queries.NewViewOrderQuery(o.ID())
		require.NoError(t, err)

		descriptions, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Delicious pancake with hazelnuts!",
			"Delicious pancake with dark chocolate!",
		}, descriptions)
	})

	t.Run("should return empty list for unknown order", func(t *testing.T) {
		query, err := queries.NewViewOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		descriptions, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, descriptions)
		assert.Empty(t, descriptions)
	})

	t.Run("should propagate other repository errors", func(t *testing.T) {
		failing := &failingOrderRepository{MemoryOrderRepository: orderrepo.NewMemoryOrderRepository()}
		failing.On("Find", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
		query, _ := queries.NewViewOrderQuery(kernel.NewUUID())

		_, err := queries.NewViewOrderQueryHandler(failing).Handle(t.Context(), query)

		require.EqualError(t, err, "boom")
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := h.Handle(t.Context(), queries.ViewOrderQuery{})

		require.ErrorIs(t, err, queries.ErrViewOrderQueryIsNotConstructed)
	})
}

func TestListOrdersByStatusQueryHandler_Handle(t *testing.T) {
	repo := orderrepo.NewMemoryOrderRepository()
	h := queries.NewListOrdersByStatusQueryHandler(repo)

	fresh := newOrderWith(t, repo, pancake.Hazelnuts)
	completed := newOrderWith(t, repo, pancake.Hazelnuts)
	require.NoError(t, completed.Complete())
	prepared := newOrderWith(t, repo, pancake.WhippedCream)
	require.NoError(t, prepared.Complete())
	require.NoError(t, prepared.Prepare())

	t.Run("completed", func(t *testing.T) {
		ids, err := h.Handle(t.Context(), queries.NewListCompletedOrdersQuery())

		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.True(t, ids[0].IsEqual(completed.ID()))
	})

	t.Run("prepared", func(t *testing.T) {
		ids, err := h.Handle(t.Context(), queries.NewListPreparedOrdersQuery())

		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.True(t, ids[0].IsEqual(prepared.ID()))
	})

	t.Run("any valid status", func(t *testing.T) {
		query, err := queries.NewListOrdersByStatusQuery(order.New)
		require.NoError(t, err)

		ids, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.True(t, ids[0].IsEqual(fresh.ID()))
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := queries.NewListOrdersByStatusQuery(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should propagate repository error", func(t *testing.T) {
		failing := &failingOrderRepository{MemoryOrderRepository: orderrepo.NewMemoryOrderRepository()}
		failing.On("ListAll", mock.Anything).Return(errors.New("boom")).Once()

		_, err := queries.NewListOrdersByStatusQueryHandler(failing).Handle(t.Context(), queries.NewListCompletedOrdersQuery())

		require.EqualError(t, err, "boom")
	})
}

func TestGetEventsQueryHandler_Handle(t *testing.T) {
	log := orderlog.NewLog()
	h := queries.NewGetEventsQueryHandler(log)

	first := kernel.NewUUID()
	second := kernel.NewUUID()
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	e1, _ := orderlog.NewItemAddedEvent(first, at, "Delicious pancake with hazelnuts!")
	e2, _ := orderlog.NewOrderCancelledEvent(second, at, 0)
	e3, _ := orderlog.NewOrderCancelledEvent(first, at, 1)
	require.NoError(t, log.Append(e1))
	require.NoError(t, log.Append(e2))
	require.NoError(t, log.Append(e3))

	t.Run("all", func(t *testing.T) {
		events, err := h.Handle(t.Context(), queries.NewGetAllEventsQuery())

		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("by order", func(t *testing.T) {
		query, err := queries.NewGetOrderEventsQuery(first)
		require.NoError(t, err)

		events, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "item-added", events[0].Kind)
		assert.Equal(t, "Added pancake with description Delicious pancake with hazelnuts!", events[0].Details)
		assert.Equal(t, at, events[0].OccurredAt)
		assert.Equal(t, "order-cancelled", events[1].Kind)
	})

	t.Run("by kind", func(t *testing.T) {
		query, err := queries.NewGetEventsByKindQuery(orderlog.OrderCancelled)
		require.NoError(t, err)

		events, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.True(t, events[0].OrderID.IsEqual(second))
		assert.True(t, events[1].OrderID.IsEqual(first))
	})

	t.Run("invalid selectors", func(t *testing.T) {
		_, err := queries.NewGetOrderEventsQuery(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = queries.NewGetEventsByKindQuery(orderlog.UnknownKind)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = h.Handle(t.Context(), queries.GetEventsQuery{})
		require.ErrorIs(t, err, queries.ErrGetEventsQueryIsNotConstructed)
	})
}
