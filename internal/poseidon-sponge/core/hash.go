package core

// FieldFriendlyHash provides a unified interface for hashes that work
// directly on field elements, as consumed by Merkle trees and transcripts.
type FieldFriendlyHash interface {
	Evaluate(inputs []Element) Element
}

// PoseidonHash is the one-shot hashing facade: every Evaluate call runs a
// fresh single-use sponge over the shared parameter table, so calls are
// independent and the facade itself is safe for concurrent use.
type PoseidonHash struct {
	params *PoseidonParameters
}

// NewPoseidonHash creates a hash facade over the given parameter table.
func NewPoseidonHash(params *PoseidonParameters) *PoseidonHash {
	return &PoseidonHash{params: params}
}

// Parameters returns the shared parameter table backing this hash.
func (p *PoseidonHash) Parameters() *PoseidonParameters {
	return p.params
}

// Evaluate absorbs all inputs into a fresh sponge in one call and squeezes
// exactly one digest element. Deterministic; the sponge is discarded.
func (p *PoseidonHash) Evaluate(inputs []Element) Element {
	sponge := NewSponge(p.params)
	sponge.Absorb(inputs)
	return sponge.Squeeze(1)[0]
}

// HashToBytes computes Evaluate and returns the digest in its canonical
// big-endian byte encoding.
func (p *PoseidonHash) HashToBytes(inputs []Element) []byte {
	digest := p.Evaluate(inputs)
	return ElementToBytes(digest)
}
