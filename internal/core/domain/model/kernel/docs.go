// Package kernel provides the shared value objects of the pancake lab domain.
//
// The package includes:
//   - UUID: identifier of orders, wrapping github.com/google/uuid
//   - Address: delivery destination (building and room, both positive)
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and fail Validate, so constructors are the only way to obtain usable values.
package kernel
