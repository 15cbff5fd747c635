package core

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is a field element of the BLS12-377 scalar field, the field this
// hash operates over. Arithmetic is delegated to gnark-crypto; values are
// held in Montgomery form internally and compared with Equal, never ==
// against literals.
type Element = fr.Element

// NewElement creates a field element from a small unsigned integer.
func NewElement(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// NewElementFromString parses a field element from a decimal (or 0x-prefixed
// hexadecimal) string, reducing modulo the field order.
func NewElementFromString(s string) (Element, error) {
	var e Element
	if _, err := e.SetString(s); err != nil {
		return Element{}, fmt.Errorf("invalid field element %q: %w", s, err)
	}
	return e, nil
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return fr.One()
}

// Modulus returns the field order as a fresh big.Int.
func Modulus() *big.Int {
	return fr.Modulus()
}

// ElementToBytes returns the canonical (non-Montgomery) big-endian encoding.
func ElementToBytes(e Element) []byte {
	b := e.Bytes()
	return b[:]
}

// Elements builds a slice of field elements from small unsigned integers.
// Convenience for tests and examples.
func Elements(vs ...uint64) []Element {
	out := make([]Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}
	return out
}
