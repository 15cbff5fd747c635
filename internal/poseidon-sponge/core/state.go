package core

// SpongeState is the fixed-width permutation state, stored as two
// fixed-length regions: a capacity prefix that is never exposed to callers
// and provides the security margin, and a rate suffix that absorption adds
// into and squeezing copies from.
//
// Logical index i addresses the capacity region for i < Capacity and rate
// slot i-Capacity otherwise. The width never changes after construction.
type SpongeState struct {
	capacityState []Element
	rateState     []Element
}

// NewSpongeState creates a zero-initialized state with the given regions.
func NewSpongeState(capacity, rate int) *SpongeState {
	return &SpongeState{
		capacityState: make([]Element, capacity),
		rateState:     make([]Element, rate),
	}
}

// Capacity returns the length of the capacity region.
func (s *SpongeState) Capacity() int {
	return len(s.capacityState)
}

// Rate returns the length of the rate region.
func (s *SpongeState) Rate() int {
	return len(s.rateState)
}

// Width returns the total state width, capacity + rate.
func (s *SpongeState) Width() int {
	return len(s.capacityState) + len(s.rateState)
}

// Element returns the state element at logical index i. An out-of-range
// index is a programming error and panics.
func (s *SpongeState) Element(i int) Element {
	if i < len(s.capacityState) {
		return s.capacityState[i]
	}
	return s.rateState[i-len(s.capacityState)]
}

// SetElement overwrites the state element at logical index i.
func (s *SpongeState) SetElement(i int, v Element) {
	if i < len(s.capacityState) {
		s.capacityState[i] = v
		return
	}
	s.rateState[i-len(s.capacityState)] = v
}
