package order_test

import (
	"sync"
	"testing"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"
	"pancakelab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	darkDescription  = "Delicious pancake with dark chocolate!"
	milkDescription  = "Delicious pancake with milk chocolate!"
	hazelDescription = "Delicious pancake with milk chocolate, hazelnuts!"
)

func newAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress(1, 101)
	require.NoError(t, err)
	return addr
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(newAddress(t))
	require.NoError(t, err)
	return o
}

func newPancake(t *testing.T, names ...pancake.IngredientName) pancake.Item {
	t.Helper()

	b := pancake.NewBuilder()
	for _, name := range names {
		ingredient, err := pancake.NewIngredient(name)
		require.NoError(t, err)
		require.NoError(t, b.AddIngredient(ingredient))
	}

	item, err := b.Build()
	require.NoError(t, err)
	return item
}

// completedOrder returns an order holding one dark chocolate pancake in Completed status.
func completedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newOrder(t)
	require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
	require.NoError(t, o.Complete())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create empty order in New status", func(t *testing.T) {
		addr := newAddress(t)

		o, err := order.NewOrder(addr)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.Items())
		assert.Equal(t, 0, o.ItemCount())
		assert.Equal(t, addr, o.Address())
		require.NoError(t, o.ID().Validate())
	})

	t.Run("should generate distinct identifiers", func(t *testing.T) {
		a := newOrder(t)
		b := newOrder(t)

		assert.False(t, a.ID().IsEqual(b.ID()))
		assert.False(t, a.IsEqual(b))
		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(nil))
	})

	t.Run("should fail with zero-value address", func(t *testing.T) {
		o, err := order.NewOrder(kernel.Address{})

		require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append items and allow duplicates", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.MilkChocolate)))

		assert.Equal(t, []string{darkDescription, darkDescription, milkDescription}, o.PancakeDescriptions())
		assert.Equal(t, 3, o.ItemCount())
	})

	t.Run("should reject nil item", func(t *testing.T) {
		o := newOrder(t)

		err := o.AddItem(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, 0, o.ItemCount())
	})

	t.Run("should reject add after completion", func(t *testing.T) {
		o := completedOrder(t)

		err := o.AddItem(newPancake(t, pancake.MilkChocolate))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Contains(t, err.Error(), "cannot add pancakes")
		assert.Equal(t, 1, o.ItemCount())
	})

	t.Run("should reject add after cancellation", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		err := o.AddItem(newPancake(t, pancake.MilkChocolate))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})

	t.Run("returned items are a snapshot", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))

		items := o.Items()
		items[0] = nil

		require.NotNil(t, o.Items()[0])
	})
}

func TestOrder_RemoveItems(t *testing.T) {
	fill := func(t *testing.T) *order.Order {
		o := newOrder(t)
		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.MilkChocolate)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.MilkChocolate, pancake.Hazelnuts)))
		require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
		return o
	}

	t.Run("should remove the oldest matches first and keep order", func(t *testing.T) {
		o := fill(t)

		removed, remaining, err := o.RemoveItems(darkDescription, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, []string{milkDescription, hazelDescription, darkDescription}, o.PancakeDescriptions())
	})

	t.Run("should silently remove fewer than requested", func(t *testing.T) {
		o := fill(t)

		removed, remaining, err := o.RemoveItems(darkDescription, 10)

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
		assert.Equal(t, 2, remaining)
		assert.Equal(t, []string{milkDescription, hazelDescription}, o.PancakeDescriptions())
	})

	t.Run("should remove nothing for unmatched description", func(t *testing.T) {
		o := fill(t)

		removed, remaining, err := o.RemoveItems("Delicious pancake with whipped cream!", 1)

		require.NoError(t, err)
		assert.Equal(t, 0, removed)
		assert.Equal(t, 5, remaining)
	})

	t.Run("should remove nothing for non-positive count", func(t *testing.T) {
		o := fill(t)

		removed, remaining, err := o.RemoveItems(darkDescription, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, removed)
		assert.Equal(t, 5, remaining)
	})

	t.Run("should reject removal outside New status", func(t *testing.T) {
		o := completedOrder(t)

		removed, remaining, err := o.RemoveItems(darkDescription, 1)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Contains(t, err.Error(), "cannot remove pancakes")
		assert.Equal(t, 0, removed)
		assert.Equal(t, 1, remaining)
		assert.Equal(t, 1, o.ItemCount())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should fail on empty order", func(t *testing.T) {
		o := newOrder(t)

		err := o.Complete()

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should succeed exactly once", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(newPancake(t, pancake.WhippedCream)))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())

		err := o.Complete()
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Contains(t, err.Error(), "Completed is not a valid status to complete")
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		o := completedOrder(t)

		require.NoError(t, o.Prepare())
		assert.Equal(t, order.Prepared, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, []string{darkDescription}, o.PancakeDescriptions())
	})

	t.Run("should not prepare a New order", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.Prepare(), errs.ErrStateIsInvalid)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should not deliver a Completed order", func(t *testing.T) {
		o := completedOrder(t)

		require.ErrorIs(t, o.Deliver(), errs.ErrStateIsInvalid)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should cancel only a New order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
		require.ErrorIs(t, o.Cancel(), errs.ErrStateIsInvalid)

		c := completedOrder(t)
		require.ErrorIs(t, c.Cancel(), errs.ErrStateIsInvalid)
		assert.Equal(t, order.Completed, c.Status())
	})

	t.Run("terminal orders refuse every transition", func(t *testing.T) {
		o := completedOrder(t)
		require.NoError(t, o.Prepare())
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Complete(), errs.ErrStateIsInvalid)
		require.ErrorIs(t, o.Prepare(), errs.ErrStateIsInvalid)
		require.ErrorIs(t, o.Deliver(), errs.ErrStateIsInvalid)
		require.ErrorIs(t, o.Cancel(), errs.ErrStateIsInvalid)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Concurrency(t *testing.T) {
	t.Run("concurrent adds lose no updates", func(t *testing.T) {
		const n = 200
		o := newOrder(t)

		items := make([]pancake.Item, n)
		for i := range items {
			items[i] = newPancake(t, pancake.MilkChocolate)
		}

		var wg sync.WaitGroup
		errCh := make(chan error, n)
		for _, item := range items {
			wg.Add(1)
			go func(item pancake.Item) {
				defer wg.Done()
				errCh <- o.AddItem(item)
			}(item)
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			require.NoError(t, err)
		}
		assert.Equal(t, n, o.ItemCount())
	})

	t.Run("concurrent prepare and deliver never leave a mixed state", func(t *testing.T) {
		for range 100 {
			o := completedOrder(t)

			var wg sync.WaitGroup
			var prepareErr, deliverErr error
			wg.Add(2)
			go func() {
				defer wg.Done()
				prepareErr = o.Prepare()
			}()
			go func() {
				defer wg.Done()
				deliverErr = o.Deliver()
			}()
			wg.Wait()

			require.NoError(t, prepareErr)
			if deliverErr == nil {
				assert.Equal(t, order.Delivered, o.Status())
			} else {
				require.ErrorIs(t, deliverErr, errs.ErrStateIsInvalid)
				assert.Equal(t, order.Prepared, o.Status())
			}
		}
	})

	t.Run("adds racing completion are either kept or rejected", func(t *testing.T) {
		for range 100 {
			o := newOrder(t)
			require.NoError(t, o.AddItem(newPancake(t, pancake.DarkChocolate)))
			item := newPancake(t, pancake.Hazelnuts)

			var wg sync.WaitGroup
			var addErr, completeErr error
			wg.Add(2)
			go func() {
				defer wg.Done()
				addErr = o.AddItem(item)
			}()
			go func() {
				defer wg.Done()
				completeErr = o.Complete()
			}()
			wg.Wait()

			require.NoError(t, completeErr)
			assert.Equal(t, order.Completed, o.Status())
			if addErr == nil {
				assert.Equal(t, 2, o.ItemCount())
			} else {
				require.ErrorIs(t, addErr, errs.ErrStateIsInvalid)
				assert.Equal(t, 1, o.ItemCount())
			}
		}
	})

	t.Run("readers run alongside writers", func(t *testing.T) {
		o := newOrder(t)
		item := newPancake(t, pancake.WhippedCream)

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = o.AddItem(item)
			}()
			go func() {
				defer wg.Done()
				descriptions := o.PancakeDescriptions()
				for _, d := range descriptions {
					assert.Equal(t, "Delicious pancake with whipped cream!", d)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, o.ItemCount())
	})
}
