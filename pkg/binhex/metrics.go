package binhex

import "time"

// Metrics provides observability for codec operations.
//
// Implementations must be safe for concurrent use. Pass nil in Options to
// disable collection with zero overhead.
type Metrics interface {
	// ObserveEncode records a completed Encode call. size is the length of
	// the assembled container, zero on failure.
	ObserveEncode(size int, duration time.Duration, err error)

	// ObserveDecode records a completed Decode call. size is the length of
	// the input text.
	ObserveDecode(size int, duration time.Duration, err error)

	// ObserveCRCFailure records a verification failure in section.
	ObserveCRCFailure(section Section)
}
