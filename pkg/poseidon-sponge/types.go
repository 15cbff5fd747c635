package poseidonsponge

import (
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/utils"
)

// Element represents an element of the BLS12-377 scalar field
// This is the public type for field elements used throughout the API
type Element = core.Element

// Parameters holds a complete Poseidon round schedule: constants, mixing
// matrix, S-box exponent and round counts
type Parameters = core.PoseidonParameters

// ProofNode is one step of a Merkle membership proof
type ProofNode = core.ProofNode

// Config represents configuration for building sponges and hashers
type Config = utils.Config

// DefaultConfig returns the default configuration: rate 2, the standard
// schedule, one digest element
var DefaultConfig = utils.DefaultConfig

// Elements builds a slice of field elements from unsigned integers
var Elements = core.Elements

// ParseElement parses a field element from a decimal or 0x-prefixed
// hexadecimal string, reducing modulo the field order
func ParseElement(s string) (Element, error) {
	e, err := core.NewElementFromString(s)
	if err != nil {
		return Element{}, &HashError{
			Code:    ErrInvalidInput,
			Message: "invalid field element",
			Cause:   err,
		}
	}
	return e, nil
}
