package core

import (
	"math/big"
	"testing"
)

// identityMatrix returns the n×n identity matrix.
func identityMatrix(n int) [][]Element {
	m := make([][]Element, n)
	for i := range m {
		m[i] = make([]Element, n)
		m[i][i] = One()
	}
	return m
}

// constantRows returns rounds copies of the given constant row.
func constantRows(rounds int, row []uint64) [][]Element {
	out := make([][]Element, rounds)
	for r := range out {
		out[r] = Elements(row...)
	}
	return out
}

// mustElement parses a decimal element, failing the test on bad input.
func mustElement(t testing.TB, s string) Element {
	t.Helper()
	var e Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("bad element literal %q: %v", s, err)
	}
	return e
}

// degenerateParameters is the fixed regression schedule: width 3, rate 2,
// alpha 5, all-zero constants, identity matrix.
func degenerateParameters() *PoseidonParameters {
	return &PoseidonParameters{
		RoundConstants: constantRows(39, []uint64{0, 0, 0}),
		MDSMatrix:      identityMatrix(3),
		Alpha:          5,
		RoundsFull:     8,
		RoundsPartial:  31,
		Rate:           2,
		Capacity:       1,
	}
}

// countingParameters makes each permutation add one to every state element:
// a single partial round, identity S-box, ones for constants, identity
// matrix. The capacity slot then counts permutations exactly.
func countingParameters() *PoseidonParameters {
	return &PoseidonParameters{
		RoundConstants: constantRows(1, []uint64{1, 1, 1}),
		MDSMatrix:      identityMatrix(3),
		Alpha:          1,
		RoundsFull:     0,
		RoundsPartial:  1,
		Rate:           2,
		Capacity:       1,
	}
}

// smallTestParameters is an arbitrary mixing schedule, cheap enough for
// property tests that need real diffusion.
func smallTestParameters() *PoseidonParameters {
	const width = 3
	const rounds = 7 // RF 4 + RP 3
	ark := make([][]Element, rounds)
	for r := range ark {
		ark[r] = make([]Element, width)
		for i := range ark[r] {
			ark[r][i] = NewElement(uint64(r*width + i + 1))
		}
	}
	mds := make([][]Element, width)
	for j := range mds {
		mds[j] = make([]Element, width)
		for k := range mds[j] {
			mds[j][k] = NewElement(uint64((j+1)*(k+2) + j))
		}
	}
	return &PoseidonParameters{
		RoundConstants: ark,
		MDSMatrix:      mds,
		Alpha:          5,
		RoundsFull:     4,
		RoundsPartial:  3,
		Rate:           2,
		Capacity:       1,
	}
}

// permutationCount reads the counter maintained by countingParameters.
func permutationCount(t *testing.T, s *PoseidonSponge) uint64 {
	t.Helper()
	var v big.Int
	s.state.capacityState[0].BigInt(&v)
	return v.Uint64()
}

// TestPermuteRoundScheduleVector locks the complete round schedule against
// a precomputed vector. The rotating matrix shifts elements between slots
// every round, so the output is sensitive to the round count, the constant
// application, the S-box placement and the matrix orientation all at once.
func TestPermuteRoundScheduleVector(t *testing.T) {
	rotation := [][]Element{
		Elements(0, 0, 1),
		Elements(1, 0, 0),
		Elements(0, 1, 0),
	}
	params := &PoseidonParameters{
		RoundConstants: constantRows(39, []uint64{1, 2, 3}),
		MDSMatrix:      rotation,
		Alpha:          3,
		RoundsFull:     8,
		RoundsPartial:  31,
		Rate:           2,
		Capacity:       1,
	}

	state := NewSpongeState(1, 2)
	state.SetElement(0, NewElement(5))
	state.SetElement(1, NewElement(6))
	state.SetElement(2, NewElement(7))
	Permute(params, state)

	want := []string{
		"1373677214728323108950371137772153317550297584554549601547433046404018289094",
		"6758331065014510986480361838830546143488476629288053639369867502345231840720",
		"3992456713677823797911077974883208082830177745906610751184678497339904437308",
	}
	for i, w := range want {
		expected := mustElement(t, w)
		if got := state.Element(i); !got.Equal(&expected) {
			t.Errorf("state[%d] = %s, want %s", i, got.String(), w)
		}
	}
}

// TestPermuteFullRoundExposure pins how many S-boxes touch each element:
// with an identity matrix and zero constants, element 0 passes through all
// 39 rounds while the other elements only see the 8 full rounds, 4 on each
// side of the partial block.
func TestPermuteFullRoundExposure(t *testing.T) {
	params := &PoseidonParameters{
		RoundConstants: constantRows(39, []uint64{0, 0, 0}),
		MDSMatrix:      identityMatrix(3),
		Alpha:          3,
		RoundsFull:     8,
		RoundsPartial:  31,
		Rate:           2,
		Capacity:       1,
	}

	state := NewSpongeState(1, 2)
	state.SetElement(0, NewElement(5))
	state.SetElement(1, NewElement(6))
	state.SetElement(2, NewElement(7))
	Permute(params, state)

	want := []string{
		"4546469712865722951673476475778304900907338802066472245906257495942542276473",
		"431597908482474431554208899169327831806415187239394001496949244902695864743",
		"2100888069364875345317423588897843087161215689644733909835425970088575457496",
	}
	for i, w := range want {
		expected := mustElement(t, w)
		if got := state.Element(i); !got.Equal(&expected) {
			t.Errorf("state[%d] = %s, want %s", i, got.String(), w)
		}
	}
}

// TestApplyMDSMatrixOrientation pins new[j] = sum_k matrix[j][k]*state[k]
// with rows indexing the output, not the transpose.
func TestApplyMDSMatrixOrientation(t *testing.T) {
	params := &PoseidonParameters{
		RoundConstants: constantRows(2, []uint64{0, 0}),
		MDSMatrix:      [][]Element{Elements(1, 2), Elements(3, 4)},
		Alpha:          1,
		RoundsFull:     2,
		RoundsPartial:  0,
		Rate:           1,
		Capacity:       1,
	}

	state := NewSpongeState(1, 1)
	state.SetElement(0, One())
	Permute(params, state)

	// Two rounds of [[1,2],[3,4]] applied to [1, 0].
	if want, got := NewElement(7), state.Element(0); !got.Equal(&want) {
		t.Errorf("state[0] = %s, want 7", got.String())
	}
	if want, got := NewElement(15), state.Element(1); !got.Equal(&want) {
		t.Errorf("state[1] = %s, want 15", got.String())
	}
}

// TestPermuteDeterminism checks identical inputs always permute to
// identical outputs.
func TestPermuteDeterminism(t *testing.T) {
	params := smallTestParameters()

	first := NewSpongeState(1, 2)
	second := NewSpongeState(1, 2)
	for i := 0; i < 3; i++ {
		first.SetElement(i, NewElement(uint64(i+11)))
		second.SetElement(i, NewElement(uint64(i+11)))
	}

	Permute(params, first)
	Permute(params, second)

	for i := 0; i < 3; i++ {
		a, b := first.Element(i), second.Element(i)
		if !a.Equal(&b) {
			t.Errorf("state[%d] diverged: %s vs %s", i, a.String(), b.String())
		}
	}
}

// TestPermuteLeavesParametersUntouched checks the permutation never writes
// back into the shared table.
func TestPermuteLeavesParametersUntouched(t *testing.T) {
	params := smallTestParameters()
	arkBefore := params.RoundConstants[0][0]
	mdsBefore := params.MDSMatrix[1][2]

	state := NewSpongeState(1, 2)
	state.SetElement(1, NewElement(99))
	Permute(params, state)
	Permute(params, state)

	if got := params.RoundConstants[0][0]; !got.Equal(&arkBefore) {
		t.Error("round constants mutated by Permute")
	}
	if got := params.MDSMatrix[1][2]; !got.Equal(&mdsBefore) {
		t.Error("MDS matrix mutated by Permute")
	}
}

// TestSboxElementFastPaths cross-checks the square-and-multiply chains
// against generic big.Int exponentiation.
func TestSboxElementFastPaths(t *testing.T) {
	alphas := []uint64{1, 3, 5, 17, 257, 9}
	x := NewElement(12345)

	for _, alpha := range alphas {
		got := x
		sboxElement(&got, alpha)

		var want Element
		want.Exp(x, new(big.Int).SetUint64(alpha))
		if !got.Equal(&want) {
			t.Errorf("sbox alpha=%d = %s, want %s", alpha, got.String(), want.String())
		}
	}
}
