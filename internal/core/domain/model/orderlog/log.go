package orderlog

import (
	"sync"

	"pancakelab/internal/core/domain/model/kernel"
)

// Log is an unbounded append-only event sequence, safe for concurrent use.
// Readers receive snapshots; an append running alongside a read is either
// fully visible to it or not at all.
type Log struct {
	mu     sync.RWMutex
	events []Event
}

func NewLog() *Log {
	return &Log{
		events: make([]Event, 0),
	}
}

// Append adds e at the end of the log. Only unconstructed events are rejected.
func (l *Log) Append(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()

	return nil
}

// EventsForOrder returns the events of one order in append order.
func (l *Log) EventsForOrder(orderID kernel.UUID) []Event {
	return l.filter(func(e Event) bool { return e.orderID.IsEqual(orderID) })
}

// EventsByKind returns the events of one kind in append order.
func (l *Log) EventsByKind(kind Kind) []Event {
	return l.filter(func(e Event) bool { return e.kind == kind })
}

// All returns every event in append order.
func (l *Log) All() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Since returns the events appended at position offset and later. A negative
// offset is treated as zero; an offset past the end yields nothing.
func (l *Log) Since(offset int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	offset = max(offset, 0)
	if offset >= len(l.events) {
		return []Event{}
	}

	out := make([]Event, len(l.events)-offset)
	copy(out, l.events[offset:])
	return out
}

// Len returns the number of events appended so far.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events)
}

func (l *Log) filter(keep func(Event) bool) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Event, 0)
	for _, e := range l.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
