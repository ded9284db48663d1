// Package order provides the Order aggregate root and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate that owns the pancakes of one customer purchase
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders get a fresh identifier and a validated delivery address at creation
//   - Status follows New -> Completed -> Prepared -> Delivered, or New -> Cancelled
//   - Items can be added or removed only while the order is New
//   - An order can be completed only when it holds at least one item
//   - Delivered and Cancelled are terminal
//
// Order is safe for concurrent use. A single lock guards status and items
// together, so a status transition and an item mutation can never interleave
// between a check and its commit.
package order
