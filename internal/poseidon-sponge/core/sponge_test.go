package core

import "testing"

// TestSpongeInitialMode checks a fresh sponge starts absorbing at offset
// zero with an all-zero state.
func TestSpongeInitialMode(t *testing.T) {
	s := NewSponge(smallTestParameters())

	if mode := s.Mode(); !mode.IsAbsorbing() || mode.Offset() != 0 {
		t.Errorf("fresh sponge mode = %+v, want absorbing at offset 0", mode)
	}
	for i := 0; i < s.state.Width(); i++ {
		if e := s.state.Element(i); !e.IsZero() {
			t.Errorf("state[%d] = %s, want 0", i, e.String())
		}
	}
}

// TestSpongeDegenerateVector runs the absorb/squeeze cycle with zero
// constants and an identity matrix, where the algebra collapses: squeezing
// after absorbing [1, 2] must return 1^(5^8) = 1.
func TestSpongeDegenerateVector(t *testing.T) {
	s := NewSponge(degenerateParameters())
	s.Absorb(Elements(1, 2))

	out := s.Squeeze(1)
	if len(out) != 1 {
		t.Fatalf("Squeeze(1) returned %d elements", len(out))
	}
	if want := One(); !out[0].Equal(&want) {
		t.Errorf("squeezed %s, want 1", out[0].String())
	}
}

// TestAbsorbEmptyIsNoOp checks absorbing zero elements never permutes and
// never changes the mode, whatever the current offset.
func TestAbsorbEmptyIsNoOp(t *testing.T) {
	tests := []struct {
		name    string
		prime   func(s *PoseidonSponge)
		offset  int
		absorbs bool
	}{
		{"fresh sponge", func(s *PoseidonSponge) {}, 0, true},
		{"mid block", func(s *PoseidonSponge) { s.Absorb(Elements(7)) }, 1, true},
		{"full block", func(s *PoseidonSponge) { s.Absorb(Elements(7, 8)) }, 2, true},
		{"while squeezing", func(s *PoseidonSponge) { s.Squeeze(1) }, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSponge(countingParameters())
			tt.prime(s)
			before := permutationCount(t, s)

			s.Absorb(nil)
			s.Absorb([]Element{})

			if got := permutationCount(t, s); got != before {
				t.Errorf("empty absorb permuted %d times", got-before)
			}
			mode := s.Mode()
			if mode.IsAbsorbing() != tt.absorbs || mode.Offset() != tt.offset {
				t.Errorf("mode changed to %+v", mode)
			}
		})
	}
}

// TestSqueezeZeroIsNoOp checks squeezing zero elements never permutes and
// never changes the mode, even when the current block is exhausted.
func TestSqueezeZeroIsNoOp(t *testing.T) {
	tests := []struct {
		name    string
		prime   func(s *PoseidonSponge)
		offset  int
		absorbs bool
	}{
		{"fresh sponge", func(s *PoseidonSponge) {}, 0, true},
		{"while absorbing", func(s *PoseidonSponge) { s.Absorb(Elements(7)) }, 1, true},
		{"mid squeeze", func(s *PoseidonSponge) { s.Squeeze(1) }, 1, false},
		{"exhausted block", func(s *PoseidonSponge) { s.Squeeze(2) }, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSponge(countingParameters())
			tt.prime(s)
			before := permutationCount(t, s)

			if out := s.Squeeze(0); out != nil {
				t.Errorf("Squeeze(0) = %v, want nil", out)
			}

			if got := permutationCount(t, s); got != before {
				t.Errorf("zero squeeze permuted %d times", got-before)
			}
			mode := s.Mode()
			if mode.IsAbsorbing() != tt.absorbs || mode.Offset() != tt.offset {
				t.Errorf("mode changed to %+v", mode)
			}
		})
	}
}

// TestDirectionSwitchPermutesOnce checks each change of direction forces
// exactly one permutation, independent of the prior offset.
func TestDirectionSwitchPermutesOnce(t *testing.T) {
	t.Run("absorb after squeeze", func(t *testing.T) {
		for _, squeezed := range []int{1, 2} {
			s := NewSponge(countingParameters())
			s.Absorb(Elements(9))
			s.Squeeze(squeezed)
			before := permutationCount(t, s)

			s.Absorb(Elements(9))

			if got := permutationCount(t, s); got != before+1 {
				t.Errorf("after squeezing %d: %d permutations on switch, want 1", squeezed, got-before)
			}
			if mode := s.Mode(); !mode.IsAbsorbing() || mode.Offset() != 1 {
				t.Errorf("after squeezing %d: mode = %+v, want absorbing at 1", squeezed, mode)
			}
		}
	})

	t.Run("squeeze after absorb", func(t *testing.T) {
		for _, absorbed := range []int{1, 2} {
			s := NewSponge(countingParameters())
			s.Absorb(make([]Element, absorbed))
			before := permutationCount(t, s)

			s.Squeeze(1)

			if got := permutationCount(t, s); got != before+1 {
				t.Errorf("after absorbing %d: %d permutations on switch, want 1", absorbed, got-before)
			}
			if mode := s.Mode(); !mode.IsSqueezing() || mode.Offset() != 1 {
				t.Errorf("after absorbing %d: mode = %+v, want squeezing at 1", absorbed, mode)
			}
		}
	})
}

// TestExactBlockBoundaries checks a full block does not permute eagerly:
// the permutation is deferred until the next same-direction call.
func TestExactBlockBoundaries(t *testing.T) {
	t.Run("absorb", func(t *testing.T) {
		s := NewSponge(countingParameters())
		s.Absorb(Elements(1, 2))
		if got := permutationCount(t, s); got != 0 {
			t.Fatalf("filling the block permuted %d times, want 0", got)
		}
		if mode := s.Mode(); mode.Offset() != 2 {
			t.Fatalf("offset = %d, want rate", mode.Offset())
		}

		s.Absorb(Elements(3))
		if got := permutationCount(t, s); got != 1 {
			t.Errorf("next absorb permuted %d times, want 1", got)
		}
		if mode := s.Mode(); !mode.IsAbsorbing() || mode.Offset() != 1 {
			t.Errorf("mode = %+v, want absorbing at 1", mode)
		}
	})

	t.Run("squeeze", func(t *testing.T) {
		s := NewSponge(countingParameters())
		s.Squeeze(2) // one permutation for the direction switch
		before := permutationCount(t, s)
		if mode := s.Mode(); mode.Offset() != 2 {
			t.Fatalf("offset = %d, want rate", mode.Offset())
		}

		s.Squeeze(1)
		if got := permutationCount(t, s); got != before+1 {
			t.Errorf("next squeeze permuted %d times, want 1", got-before)
		}
		if mode := s.Mode(); !mode.IsSqueezing() || mode.Offset() != 1 {
			t.Errorf("mode = %+v, want squeezing at 1", mode)
		}
	})
}

// TestLongInputPermutationCount checks chunking across block boundaries:
// absorbing n elements into a rate-r sponge permutes once per filled block
// that more input follows.
func TestLongInputPermutationCount(t *testing.T) {
	tests := []struct {
		absorbed int
		want     uint64
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{7, 3},
		{8, 3},
	}
	for _, tt := range tests {
		s := NewSponge(countingParameters())
		s.Absorb(make([]Element, tt.absorbed))
		if got := permutationCount(t, s); got != tt.want {
			t.Errorf("absorbing %d elements permuted %d times, want %d", tt.absorbed, got, tt.want)
		}
	}
}

// TestInterleavedSessionPermutationCount counts the permutations of a full
// interleaved session on a rate-2 sponge: absorb 3, squeeze 2, absorb 1,
// squeeze 3 runs exactly five.
func TestInterleavedSessionPermutationCount(t *testing.T) {
	s := NewSponge(countingParameters())

	s.Absorb(make([]Element, 3)) // one permutation at the block crossing
	s.Squeeze(2)                 // one for the direction switch
	s.Absorb(make([]Element, 1)) // one for the direction switch
	s.Squeeze(3)                 // one for the switch, one when the block runs out

	if got := permutationCount(t, s); got != 5 {
		t.Errorf("session ran %d permutations, want 5", got)
	}
	if mode := s.Mode(); !mode.IsSqueezing() || mode.Offset() != 1 {
		t.Errorf("mode = %+v, want squeezing at 1", mode)
	}
}

// TestAbsorbChunkInvariance checks splitting one input across any sequence
// of Absorb calls leaves the squeezed output unchanged.
func TestAbsorbChunkInvariance(t *testing.T) {
	params := smallTestParameters()
	inputs := make([]Element, 7)
	for i := range inputs {
		inputs[i] = NewElement(uint64(i*i + 3))
	}

	want := func() []Element {
		s := NewSponge(params)
		s.Absorb(inputs)
		return s.Squeeze(3)
	}()

	splits := [][][]Element{
		{inputs[:3], inputs[3:]},
		{inputs[:1], inputs[1:2], inputs[2:5], inputs[5:]},
		{nil, inputs[:4], {}, inputs[4:]},
		{inputs[:6], inputs[6:]},
	}
	for i, split := range splits {
		s := NewSponge(params)
		for _, chunk := range split {
			s.Absorb(chunk)
		}
		got := s.Squeeze(3)
		for j := range want {
			if !got[j].Equal(&want[j]) {
				t.Errorf("split %d: output[%d] = %s, want %s", i, j, got[j].String(), want[j].String())
			}
		}
	}
}

// TestSqueezeComposability checks Squeeze(a) followed by Squeeze(b) returns
// the same elements as a single Squeeze(a+b).
func TestSqueezeComposability(t *testing.T) {
	params := smallTestParameters()
	cases := []struct{ a, b int }{{1, 1}, {2, 3}, {0, 4}, {3, 0}, {5, 7}}

	for _, tc := range cases {
		one := NewSponge(params)
		one.Absorb(Elements(1, 2, 3))
		want := one.Squeeze(tc.a + tc.b)

		two := NewSponge(params)
		two.Absorb(Elements(1, 2, 3))
		got := append(two.Squeeze(tc.a), two.Squeeze(tc.b)...)

		if len(got) != len(want) {
			t.Fatalf("squeeze %d+%d returned %d elements, want %d", tc.a, tc.b, len(got), len(want))
		}
		for i := range want {
			if !got[i].Equal(&want[i]) {
				t.Errorf("squeeze %d+%d: output[%d] = %s, want %s", tc.a, tc.b, i, got[i].String(), want[i].String())
			}
		}
	}
}

// TestSqueezeDoesNotClearRate checks squeezing copies elements out without
// zeroing them: two interleaved sessions squeezing the same prefix agree.
func TestSqueezeDoesNotClearRate(t *testing.T) {
	params := smallTestParameters()

	s := NewSponge(params)
	s.Absorb(Elements(42))
	first := s.Squeeze(2)

	r := NewSponge(params)
	r.Absorb(Elements(42))
	head := r.Squeeze(1)
	tail := r.Squeeze(1)

	if !head[0].Equal(&first[0]) || !tail[0].Equal(&first[1]) {
		t.Error("split squeeze diverged from combined squeeze")
	}

	// The rate slots keep their values after being read.
	if got := s.state.Element(params.Capacity); !got.Equal(&first[0]) {
		t.Errorf("rate slot 0 = %s after squeeze, want %s", got.String(), first[0].String())
	}
}

// TestAbsorbAddsIntoRate checks absorbed elements accumulate additively
// into the rate slots rather than overwriting them.
func TestAbsorbAddsIntoRate(t *testing.T) {
	s := NewSponge(countingParameters())
	s.Absorb(Elements(5, 6))
	s.Absorb(Elements(10)) // permutes (+1 everywhere), then adds into slot 0

	// rate slot 0: 5 + 1 + 10, rate slot 1: 6 + 1
	if want := NewElement(16); !s.state.rateState[0].Equal(&want) {
		t.Errorf("rate[0] = %s, want 16", s.state.rateState[0].String())
	}
	if want := NewElement(7); !s.state.rateState[1].Equal(&want) {
		t.Errorf("rate[1] = %s, want 7", s.state.rateState[1].String())
	}
}

// TestCapacityUntouchedByAbsorb checks absorbing writes only rate slots.
func TestCapacityUntouchedByAbsorb(t *testing.T) {
	s := NewSponge(smallTestParameters())
	s.Absorb(Elements(3, 4)) // exactly one block, no permutation yet

	if got := s.state.capacityState[0]; !got.IsZero() {
		t.Errorf("capacity = %s after rate-only absorb, want 0", got.String())
	}
}

// TestSpongeParametersAccessor checks the sponge exposes the table it was
// built with.
func TestSpongeParametersAccessor(t *testing.T) {
	params := smallTestParameters()
	s := NewSponge(params)
	if s.Parameters() != params {
		t.Error("Parameters() did not return the constructor argument")
	}
}
