package kernel

// Sequence issues monotonically increasing integer identifiers starting
// at 1. Each collection owner (registry, manager, ledger) holds its own
// Sequence; identifiers are never shared between owners and never reused,
// even when an entity is removed.
//
// Sequence is not safe for concurrent use. It is mutated only under the
// same single-actor discipline as the collection it serves.
type Sequence struct {
	next int
}

// NewSequence creates a sequence whose first issued identifier is 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next identifier and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}
