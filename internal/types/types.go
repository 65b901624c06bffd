// internal/types/types.go
package types

// EntityID is an opaque entity handle. Zero is never issued.
type EntityID uint64
