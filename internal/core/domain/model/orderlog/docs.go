// Package orderlog provides the append-only audit trail of order changes.
//
// An Event records which order changed, when, what kind of change it was and a
// human-readable detail line rendered from a fixed template. Log keeps events
// in append order; that order, not the timestamps, is the source of truth.
package orderlog
