package integration_test

import (
	"testing"

	"github.com/newmokha/poseidon-sponge/pkg/poseidon-sponge"
)

// Test02_DuplexSession tests an interleaved absorb/squeeze session against
// a precomputed transcript:
// 1. Absorb three elements, squeeze two
// 2. Absorb one more, squeeze three
// 3. Compare every output with the known-answer vector
//
// Related example: examples/02_duplex_sponge/main.go (user-facing demonstration)
func Test02_DuplexSession(t *testing.T) {
	t.Log("=== Test 02: Duplex Sponge Session ===")

	sponge, err := poseidonsponge.NewSponge(nil)
	if err != nil {
		t.Fatalf("Failed to create sponge: %v", err)
	}

	t.Log("Step 1: Absorbing [1, 2, 3]...")
	sponge.Absorb(poseidonsponge.Elements(1, 2, 3))

	t.Log("Step 2: Squeezing 2 elements...")
	first := sponge.Squeeze(2)

	t.Log("Step 3: Absorbing [4]...")
	sponge.Absorb(poseidonsponge.Elements(4))

	t.Log("Step 4: Squeezing 3 elements...")
	second := sponge.Squeeze(3)

	outputs := append(append([]poseidonsponge.Element{}, first...), second...)
	want := []string{
		"5179387639068646733901780777753220961858734480702518600224462207573178238562",
		"5780373046106341336501678576129218360241438025520495184061078074404865426982",
		"1777650588217455447554173023864934364384195710130496006454017429994041361493",
		"6756799909490905568326548896794098239915529825575371314327424578059618012887",
		"2345878396971777270180845302875105085835401793701205066532218523248172779611",
	}

	if len(outputs) != len(want) {
		t.Fatalf("Session produced %d outputs, want %d", len(outputs), len(want))
	}
	for i := range want {
		if outputs[i].String() != want[i] {
			t.Fatalf("Output %d mismatch:\n  got  %s\n  want %s", i, outputs[i].String(), want[i])
		}
		t.Logf("  ✓ out[%d] = %s", i, want[i])
	}

	t.Log("")
	t.Log("🎉 SUCCESS: Duplex transcript matches the known-answer vector!")
}

// Test02_ChunkingInvariance checks that splitting absorbs and squeezes
// across calls never changes the output stream.
func Test02_ChunkingInvariance(t *testing.T) {
	t.Log("=== Test 02b: Chunking Invariance ===")

	inputs := poseidonsponge.Elements(11, 12, 13, 14, 15, 16, 17)

	t.Log("Step 1: One-call reference session...")
	reference, err := poseidonsponge.NewSponge(nil)
	if err != nil {
		t.Fatalf("Failed to create sponge: %v", err)
	}
	reference.Absorb(inputs)
	want := reference.Squeeze(4)

	t.Log("Step 2: Chunked absorb, split squeeze...")
	chunked, err := poseidonsponge.NewSponge(nil)
	if err != nil {
		t.Fatalf("Failed to create sponge: %v", err)
	}
	chunked.Absorb(inputs[:2])
	chunked.Absorb(nil)
	chunked.Absorb(inputs[2:3])
	chunked.Absorb(inputs[3:])

	got := chunked.Squeeze(1)
	got = append(got, chunked.Squeeze(3)...)

	for i := range want {
		if !got[i].Equal(&want[i]) {
			t.Fatalf("Output %d diverged under chunking", i)
		}
	}
	t.Log("  ✓ 4 outputs identical")

	t.Log("")
	t.Log("🎉 SUCCESS: Chunk boundaries are invisible to the output stream!")
}
