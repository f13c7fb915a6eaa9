package ports

import "snipyard/internal/domain"

// Sink consumes a resolved destination map. Implementations are best-effort:
// a failing destination must not prevent the remaining destinations from
// being processed, and destinations are visited in map insertion order.
type Sink interface {
	// Insert writes each destination's text in place: the "here" sentinel to
	// the active insertion point, every other key into the named file.
	Insert(m *domain.DestinationMap) error

	// Copy places the destinations' text on the shared clipboard instead of
	// writing in place.
	Copy(m *domain.DestinationMap) error
}
