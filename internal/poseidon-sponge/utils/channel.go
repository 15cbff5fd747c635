package utils

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
)

// Channel represents a Fiat-Shamir transcript channel backed by a duplex
// Poseidon sponge. The prover sends field elements into the channel and
// challenges are squeezed back out of the same sponge, so prover and
// verifier derive identical randomness from the transcript alone.
type Channel struct {
	sponge *core.PoseidonSponge
	proof  []string
}

// NewChannel creates a new Fiat-Shamir channel. The label provides domain
// separation: channels with different labels yield unrelated challenges.
func NewChannel(params *core.PoseidonParameters, label string) *Channel {
	c := &Channel{
		sponge: core.NewSponge(params),
		proof:  make([]string, 0, 64),
	}

	seed := sha3.Sum256([]byte(label))
	var e core.Element
	e.SetBytes(seed[:])
	c.sponge.Absorb([]core.Element{e})

	return c
}

// Send absorbs prover data into the transcript
func (c *Channel) Send(elements []core.Element) {
	parts := make([]string, len(elements))
	for i := range elements {
		parts[i] = elements[i].String()
	}
	c.proof = append(c.proof, fmt.Sprintf("send:%s", strings.Join(parts, ",")))

	c.sponge.Absorb(elements)
}

// ReceiveChallenge squeezes one verifier challenge from the transcript
func (c *Channel) ReceiveChallenge() core.Element {
	out := c.sponge.Squeeze(1)
	c.proof = append(c.proof, fmt.Sprintf("receiveChallenge:%s", out[0].String()))
	return out[0]
}

// ReceiveChallenges squeezes n challenges at once. The values match n
// consecutive ReceiveChallenge calls on the same transcript.
func (c *Channel) ReceiveChallenges(n int) []core.Element {
	if n <= 0 {
		return nil
	}

	out := c.sponge.Squeeze(n)
	parts := make([]string, len(out))
	for i := range out {
		parts[i] = out[i].String()
	}
	c.proof = append(c.proof, fmt.Sprintf("receiveChallenges:%s", strings.Join(parts, ",")))

	return out
}

// ReceiveRandomInt derives a random integer in the range [min, max]
// Returns nil if min > max (invalid range)
func (c *Channel) ReceiveRandomInt(min, max *big.Int) *big.Int {
	if min.Cmp(max) > 0 {
		// Return nil for invalid range (caller should handle)
		return nil
	}

	challenge := c.sponge.Squeeze(1)[0]
	var v big.Int
	challenge.BigInt(&v)

	// Compute range size
	rangeSize := new(big.Int).Sub(max, min)
	rangeSize.Add(rangeSize, big.NewInt(1))

	// Reduce the challenge into the range
	random := new(big.Int).Mod(&v, rangeSize)
	random.Add(random, min)

	c.proof = append(c.proof, fmt.Sprintf("receiveRandInt:%s", random.String()))

	return random
}

// Proof returns the proof transcript
func (c *Channel) Proof() []string {
	return append([]string(nil), c.proof...)
}

// String returns a string representation of the channel transcript
func (c *Channel) String() string {
	return strings.Join(c.proof, " ")
}
