package utils

import (
	"math/big"
	"strings"
	"testing"

	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/params"
)

// channelParams returns the shared rate-2 table used by the channel tests.
func channelParams(t testing.TB) *core.PoseidonParameters {
	t.Helper()
	p, err := params.Default(2)
	if err != nil {
		t.Fatalf("loading default parameters: %v", err)
	}
	return p
}

// TestNewChannel tests creating a new channel
func TestNewChannel(t *testing.T) {
	ch := NewChannel(channelParams(t), "test protocol v1")
	if ch == nil {
		t.Fatal("NewChannel returned nil")
	}
	if ch.sponge == nil {
		t.Fatal("Channel sponge not initialized")
	}
	if len(ch.Proof()) != 0 {
		t.Error("Fresh channel should have an empty transcript")
	}
}

// TestChannelLabelSeparation tests that different labels yield different
// challenge streams
func TestChannelLabelSeparation(t *testing.T) {
	p := channelParams(t)

	ch1 := NewChannel(p, "protocol a")
	ch2 := NewChannel(p, "protocol b")

	data := core.Elements(1, 2, 3)
	ch1.Send(data)
	ch2.Send(data)

	c1 := ch1.ReceiveChallenge()
	c2 := ch2.ReceiveChallenge()
	if c1.Equal(&c2) {
		t.Error("Channels with different labels produced the same challenge")
	}
}

// TestChannelDeterminism tests that channels are deterministic
func TestChannelDeterminism(t *testing.T) {
	p := channelParams(t)

	ch1 := NewChannel(p, "same label")
	ch2 := NewChannel(p, "same label")

	data := core.Elements(7, 8)
	ch1.Send(data)
	ch2.Send(data)

	c1 := ch1.ReceiveChallenge()
	c2 := ch2.ReceiveChallenge()
	if !c1.Equal(&c2) {
		t.Errorf("Deterministic channels produced different challenges: %s vs %s", c1.String(), c2.String())
	}

	r1 := ch1.ReceiveRandomInt(big.NewInt(0), big.NewInt(100))
	r2 := ch2.ReceiveRandomInt(big.NewInt(0), big.NewInt(100))
	if r1.Cmp(r2) != 0 {
		t.Errorf("Deterministic channels produced different random values: %v vs %v", r1, r2)
	}
}

// TestChannelChallengeBindsToData tests that challenges depend on every
// element sent
func TestChannelChallengeBindsToData(t *testing.T) {
	p := channelParams(t)

	ch1 := NewChannel(p, "binding")
	ch2 := NewChannel(p, "binding")

	ch1.Send(core.Elements(1, 2, 3))
	ch2.Send(core.Elements(1, 2, 4))

	c1 := ch1.ReceiveChallenge()
	c2 := ch2.ReceiveChallenge()
	if c1.Equal(&c2) {
		t.Error("Challenge did not change with the sent data")
	}
}

// TestChannelSend tests sending data to the channel
func TestChannelSend(t *testing.T) {
	ch := NewChannel(channelParams(t), "send test")

	ch.Send(core.Elements(10, 20))

	proof := ch.Proof()
	if len(proof) != 1 {
		t.Fatalf("Expected 1 proof entry, got %d", len(proof))
	}
	if proof[0] != "send:10,20" {
		t.Errorf("Proof entry = %q, want \"send:10,20\"", proof[0])
	}
}

// TestChannelReceiveChallenges tests batch challenge generation matches
// repeated single challenges
func TestChannelReceiveChallenges(t *testing.T) {
	p := channelParams(t)

	batch := NewChannel(p, "batch")
	single := NewChannel(p, "batch")
	batch.Send(core.Elements(5))
	single.Send(core.Elements(5))

	got := batch.ReceiveChallenges(3)
	if len(got) != 3 {
		t.Fatalf("ReceiveChallenges(3) returned %d elements", len(got))
	}
	for i := 0; i < 3; i++ {
		want := single.ReceiveChallenge()
		if !got[i].Equal(&want) {
			t.Errorf("Challenge %d = %s, want %s", i, got[i].String(), want.String())
		}
	}

	if out := batch.ReceiveChallenges(0); out != nil {
		t.Error("ReceiveChallenges(0) should return nil")
	}
	if out := batch.ReceiveChallenges(-1); out != nil {
		t.Error("ReceiveChallenges(-1) should return nil")
	}
}

// TestChannelReceiveRandomInt tests generating random integers
func TestChannelReceiveRandomInt(t *testing.T) {
	ch := NewChannel(channelParams(t), "randint")

	// Test valid range
	min := big.NewInt(10)
	max := big.NewInt(100)
	result := ch.ReceiveRandomInt(min, max)

	if result == nil {
		t.Fatal("ReceiveRandomInt returned nil for valid range")
	}

	if result.Cmp(min) < 0 || result.Cmp(max) > 0 {
		t.Errorf("Result %v out of range [%v, %v]", result, min, max)
	}

	// Test invalid range (min > max)
	result2 := ch.ReceiveRandomInt(max, min)
	if result2 != nil {
		t.Error("ReceiveRandomInt should return nil for invalid range")
	}

	// Test equal min and max
	result3 := ch.ReceiveRandomInt(min, min)
	if result3 == nil {
		t.Fatal("ReceiveRandomInt returned nil for min==max")
	}
	if result3.Cmp(min) != 0 {
		t.Errorf("Expected %v for min==max, got %v", min, result3)
	}
}

// TestChannelLargeRange tests random int generation with large ranges
func TestChannelLargeRange(t *testing.T) {
	ch := NewChannel(channelParams(t), "large range")

	min := big.NewInt(0)
	max := new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

	result := ch.ReceiveRandomInt(min, max)
	if result == nil {
		t.Fatal("ReceiveRandomInt failed for large range")
	}

	if result.Cmp(min) < 0 || result.Cmp(max) > 0 {
		t.Error("Result out of bounds for large range")
	}
}

// TestChannelProof tests retrieving the channel transcript
func TestChannelProof(t *testing.T) {
	ch := NewChannel(channelParams(t), "proof")

	ch.Send(core.Elements(1))
	ch.ReceiveChallenge()
	ch.Send(core.Elements(2))
	ch.ReceiveRandomInt(big.NewInt(0), big.NewInt(100))

	proof := ch.Proof()
	if len(proof) != 4 {
		t.Fatalf("Expected 4 proof entries, got %d", len(proof))
	}
	if !strings.HasPrefix(proof[0], "send:") {
		t.Error("First entry should be a send")
	}
	if !strings.HasPrefix(proof[1], "receiveChallenge:") {
		t.Error("Second entry should be a receiveChallenge")
	}
	if !strings.HasPrefix(proof[3], "receiveRandInt:") {
		t.Error("Fourth entry should be a receiveRandInt")
	}

	// Modifying returned proof shouldn't affect the channel
	proof[0] = "modified"
	proof2 := ch.Proof()
	if proof2[0] == "modified" {
		t.Error("Modifying returned proof affected channel transcript")
	}
}

// TestChannelString tests string representation
func TestChannelString(t *testing.T) {
	ch := NewChannel(channelParams(t), "string")

	// Initially empty
	if str := ch.String(); str != "" {
		t.Errorf("Empty channel should have empty string, got %q", str)
	}

	ch.Send(core.Elements(42))
	str := ch.String()
	if !strings.Contains(str, "send:42") {
		t.Errorf("String should contain the send entry, got %q", str)
	}
}

// BenchmarkChannelSend benchmarks absorbing transcript data
func BenchmarkChannelSend(b *testing.B) {
	p, err := params.Default(2)
	if err != nil {
		b.Fatal(err)
	}
	ch := NewChannel(p, "bench")
	data := core.Elements(1, 2, 3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch.Send(data)
	}
}

// BenchmarkChannelReceiveChallenge benchmarks challenge generation
func BenchmarkChannelReceiveChallenge(b *testing.B) {
	p, err := params.Default(2)
	if err != nil {
		b.Fatal(err)
	}
	ch := NewChannel(p, "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ch.ReceiveChallenge()
	}
}
