package core

// spongeDirection tags whether the sponge is currently taking input or
// emitting output.
type spongeDirection int

const (
	directionAbsorbing spongeDirection = iota
	directionSqueezing
)

// DuplexSpongeMode pairs the duplex direction with the next rate offset.
// The two always travel together so an invalid (direction, offset)
// combination cannot arise; offset stays in [0, rate]. The zero value is
// absorbing at offset 0, the initial mode of every sponge.
type DuplexSpongeMode struct {
	direction spongeDirection
	offset    int
}

func absorbing(offset int) DuplexSpongeMode {
	return DuplexSpongeMode{direction: directionAbsorbing, offset: offset}
}

func squeezing(offset int) DuplexSpongeMode {
	return DuplexSpongeMode{direction: directionSqueezing, offset: offset}
}

// IsAbsorbing reports whether the sponge is in the absorbing direction.
func (m DuplexSpongeMode) IsAbsorbing() bool {
	return m.direction == directionAbsorbing
}

// IsSqueezing reports whether the sponge is in the squeezing direction.
func (m DuplexSpongeMode) IsSqueezing() bool {
	return m.direction == directionSqueezing
}

// Offset returns the rate slot the next absorbed element is added into or
// the next squeezed element is copied from.
func (m DuplexSpongeMode) Offset() int {
	return m.offset
}

// PoseidonSponge is a duplex sponge over the Poseidon permutation. Absorbed
// elements are added into the rate region, squeezed elements are copied out
// of it, and the permutation runs exactly at block boundaries and direction
// switches. A sponge stays usable across unboundedly many alternating
// Absorb/Squeeze calls.
//
// A sponge is single-owner state. For parallel hashing give each goroutine
// its own sponge; the parameter table may be shared freely.
type PoseidonSponge struct {
	params *PoseidonParameters
	state  *SpongeState
	mode   DuplexSpongeMode
}

// NewSponge creates a sponge with zero state, absorbing at offset 0.
// The parameter table is held by reference and never copied.
func NewSponge(params *PoseidonParameters) *PoseidonSponge {
	return &PoseidonSponge{
		params: params,
		state:  NewSpongeState(params.Capacity, params.Rate),
		mode:   absorbing(0),
	}
}

// Parameters returns the shared parameter table backing this sponge.
func (s *PoseidonSponge) Parameters() *PoseidonParameters {
	return s.params
}

// Mode returns the current duplex mode.
func (s *PoseidonSponge) Mode() DuplexSpongeMode {
	return s.mode
}

// Absorb adds elements into the rate region, permuting at each block
// boundary. Absorbing nothing is a no-op. Absorbing right after a squeeze
// always permutes exactly once before the first element is consumed,
// whatever the prior squeeze offset was.
func (s *PoseidonSponge) Absorb(elements []Element) {
	if len(elements) == 0 {
		return
	}

	if s.mode.IsSqueezing() {
		s.permute()
		s.absorbInternal(0, elements)
		return
	}
	offset := s.mode.offset
	if offset == s.params.Rate {
		s.permute()
		offset = 0
	}
	s.absorbInternal(offset, elements)
}

// absorbInternal consumes the input chunk by chunk starting at the given
// rate offset, adding element-wise. The final chunk leaves the mode at its
// end offset without a trailing permutation.
func (s *PoseidonSponge) absorbInternal(offset int, remaining []Element) {
	rate := s.params.Rate
	for {
		if offset+len(remaining) <= rate {
			for i := range remaining {
				s.state.rateState[offset+i].Add(&s.state.rateState[offset+i], &remaining[i])
			}
			s.mode = absorbing(offset + len(remaining))
			return
		}
		chunk := rate - offset
		for i := 0; i < chunk; i++ {
			s.state.rateState[offset+i].Add(&s.state.rateState[offset+i], &remaining[i])
		}
		s.permute()
		remaining = remaining[chunk:]
		offset = 0
	}
}

// Squeeze copies n elements out of the rate region, permuting at each block
// boundary. Squeezing zero elements is a no-op. Squeezing right after an
// absorb always permutes exactly once first, so output never exposes a
// half-absorbed block.
func (s *PoseidonSponge) Squeeze(n int) []Element {
	if n == 0 {
		return nil
	}
	out := make([]Element, n)

	if s.mode.IsAbsorbing() {
		s.permute()
		s.squeezeInternal(0, out)
		return out
	}
	offset := s.mode.offset
	if offset == s.params.Rate {
		s.permute()
		offset = 0
	}
	s.squeezeInternal(offset, out)
	return out
}

// squeezeInternal fills out chunk by chunk starting at the given rate
// offset, copying in state order. The final chunk leaves the mode at its
// end offset without a trailing permutation.
func (s *PoseidonSponge) squeezeInternal(offset int, out []Element) {
	rate := s.params.Rate
	for {
		if offset+len(out) <= rate {
			copy(out, s.state.rateState[offset:offset+len(out)])
			s.mode = squeezing(offset + len(out))
			return
		}
		chunk := rate - offset
		copy(out[:chunk], s.state.rateState[offset:])
		s.permute()
		out = out[chunk:]
		offset = 0
	}
}

// permute applies the Poseidon permutation to the whole state.
func (s *PoseidonSponge) permute() {
	Permute(s.params, s.state)
}
