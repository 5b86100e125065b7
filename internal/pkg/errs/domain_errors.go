package errs

import "errors"

// Sentinel errors shared across the store and schedule layers. Every error
// the store returns is marked with exactly one of these so callers can
// branch with errors.Is without depending on message text.
var (
	// ErrStorage marks failures of the durable key-value layer (write
	// failure, quota, unreadable file).
	ErrStorage = errors.New("storage failure")

	// ErrParse marks malformed persisted blobs or import snapshots.
	ErrParse = errors.New("malformed data")

	// ErrUnsupportedVersion marks an import snapshot whose version the
	// current schema does not understand.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrNotFound marks lookups for an id that is not in a collection.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks entities rejected before they reach a collection
	// (empty client name, negative price, bad date format).
	ErrValidation = errors.New("validation error")
)
