// Package queries contains read-only operations over active orders and the
// audit log. Query handlers never mutate state.
package queries
