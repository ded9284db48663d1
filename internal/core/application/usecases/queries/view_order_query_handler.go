package queries

import (
	"context"
	"errors"

	"pancakelab/internal/core/ports"
	"pancakelab/internal/pkg/errs"
)

// ViewOrderQueryHandler returns pancake descriptions in insertion order.
// An order that is not tracked (never existed, cancelled or delivered)
// yields an empty list rather than an error.
type ViewOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewViewOrderQueryHandler(orderRepo ports.OrderRepository) ViewOrderQueryHandler {
	return ViewOrderQueryHandler{orderRepo: orderRepo}
}

func (h ViewOrderQueryHandler) Handle(ctx context.Context, query ViewOrderQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orderRepo.Find(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	return o.PancakeDescriptions(), nil
}
