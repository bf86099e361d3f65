// Package storage is the durable-storage boundary for session state. A
// store holds one serialized record per namespace; every Save overwrites the
// whole record, there are no partial updates. The session writes through a
// Store synchronously inside each mutating operation.
package storage

// Store persists a single record.
type Store interface {
	// Load decodes the stored record into v. ok is false when nothing has
	// been saved yet, which callers treat as "seed fresh state".
	Load(v any) (ok bool, err error)

	// Save serializes v and overwrites the stored record.
	Save(v any) error
}
