package core

import "fmt"

// PoseidonParameters holds the complete round schedule for one Poseidon
// permutation instance: round constants, MDS mixing matrix, S-box exponent
// and round counts.
//
// A parameter set is immutable after construction and is shared by pointer
// across any number of sponges; concurrent readers need no locking. The
// permutation core trusts the dimensions unconditionally — consistency is
// the supplier's contract (see Validate), and a malformed table is a
// programming error, not a runtime condition.
type PoseidonParameters struct {
	// RoundConstants has one width-long vector per round,
	// RoundsFull+RoundsPartial rows in total.
	RoundConstants [][]Element
	// MDSMatrix is the width×width linear mixing layer.
	MDSMatrix [][]Element
	// Alpha is the S-box exponent x ↦ x^Alpha. Must make the map a field
	// bijection (odd, coprime to the multiplicative group order).
	Alpha uint64
	// RoundsFull (RF) full rounds, split evenly around the partial block.
	RoundsFull int
	// RoundsPartial (RP) partial rounds forming the middle block.
	RoundsPartial int
	// Rate is the number of state elements absorbed/squeezed per block.
	Rate int
	// Capacity is the number of hidden state elements (1 for hashing).
	Capacity int
}

// Width returns the permutation width, capacity + rate.
func (p *PoseidonParameters) Width() int {
	return p.Capacity + p.Rate
}

// Rounds returns the total number of rounds, full + partial.
func (p *PoseidonParameters) Rounds() int {
	return p.RoundsFull + p.RoundsPartial
}

// Validate checks the structural invariants a well-formed parameter set
// must satisfy. Suppliers call this once when a table is registered; the
// permutation itself never re-validates.
func (p *PoseidonParameters) Validate() error {
	if p.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", p.Rate)
	}
	if p.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", p.Capacity)
	}
	if p.RoundsFull < 0 || p.RoundsPartial < 0 {
		return fmt.Errorf("round counts must be non-negative, got RF=%d RP=%d", p.RoundsFull, p.RoundsPartial)
	}
	if p.Alpha%2 == 0 {
		return fmt.Errorf("alpha must be odd, got %d", p.Alpha)
	}

	width := p.Width()
	if len(p.RoundConstants) != p.Rounds() {
		return fmt.Errorf("expected %d round constant rows, got %d", p.Rounds(), len(p.RoundConstants))
	}
	for i, row := range p.RoundConstants {
		if len(row) != width {
			return fmt.Errorf("round constant row %d has %d entries, want %d", i, len(row), width)
		}
	}
	if len(p.MDSMatrix) != width {
		return fmt.Errorf("MDS matrix has %d rows, want %d", len(p.MDSMatrix), width)
	}
	for i, row := range p.MDSMatrix {
		if len(row) != width {
			return fmt.Errorf("MDS matrix row %d has %d entries, want %d", i, len(row), width)
		}
	}

	return nil
}
