package core

import "math/big"

// Permute applies the full Poseidon round schedule to the state in place.
//
// Every round adds that round's constants, applies the S-box layer and
// mixes the state through the MDS matrix. The partial rounds form the exact
// middle block of the schedule: round i is partial iff
// RoundsFull/2 <= i < RoundsFull/2 + RoundsPartial (integer division).
// Partial rounds apply the S-box to state element 0 only; all other rounds
// apply it to every element. The placement of the partial block is
// security-critical and must not drift.
//
// Pure with respect to params: identical (params, state) inputs always
// produce the identical output state.
func Permute(params *PoseidonParameters, state *SpongeState) {
	width := params.Width()
	half := params.RoundsFull / 2

	cur := make([]Element, width)
	next := make([]Element, width)
	for i := 0; i < width; i++ {
		cur[i] = state.Element(i)
	}

	for round := 0; round < params.Rounds(); round++ {
		addRoundConstants(cur, params.RoundConstants[round])
		partial := round >= half && round < half+params.RoundsPartial
		applySBox(cur, params.Alpha, partial)
		applyMDSMatrix(params.MDSMatrix, cur, next)
		cur, next = next, cur
	}

	for i := 0; i < width; i++ {
		state.SetElement(i, cur[i])
	}
}

// addRoundConstants adds one round's constant vector element-wise.
func addRoundConstants(state []Element, constants []Element) {
	for i := range state {
		state[i].Add(&state[i], &constants[i])
	}
}

// applySBox raises state elements to the alpha-th power: element 0 only in
// partial rounds, every element in full rounds.
func applySBox(state []Element, alpha uint64, partial bool) {
	if partial {
		sboxElement(&state[0], alpha)
		return
	}
	for i := range state {
		sboxElement(&state[i], alpha)
	}
}

// applyMDSMatrix computes out[j] = sum_k matrix[j][k] * in[k].
func applyMDSMatrix(matrix [][]Element, in, out []Element) {
	var term Element
	for j := range out {
		out[j] = Element{}
		row := matrix[j]
		for k := range in {
			term.Mul(&row[k], &in[k])
			out[j].Add(&out[j], &term)
		}
	}
}

// sboxElement raises x to the alpha-th power in place. The canonical
// exponents get square-and-multiply chains; anything else goes through Exp.
func sboxElement(x *Element, alpha uint64) {
	switch alpha {
	case 1:
		// identity map; only degenerate schedules use it
	case 3:
		var x2 Element
		x2.Square(x)
		x.Mul(x, &x2)
	case 5:
		var x4 Element
		x4.Square(x)
		x4.Square(&x4)
		x.Mul(x, &x4)
	case 17:
		var x16 Element
		x16.Square(x)
		x16.Square(&x16)
		x16.Square(&x16)
		x16.Square(&x16)
		x.Mul(x, &x16)
	case 257:
		var x256 Element
		x256.Square(x)
		for i := 0; i < 7; i++ {
			x256.Square(&x256)
		}
		x.Mul(x, &x256)
	default:
		var k big.Int
		k.SetUint64(alpha)
		x.Exp(*x, &k)
	}
}
