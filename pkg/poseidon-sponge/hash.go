package poseidonsponge

import (
	"fmt"

	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/params"
)

// Sponge is the public interface for an incremental duplex sponge session
type Sponge interface {
	// Absorb feeds field elements into the sponge state
	Absorb(elements []Element)

	// Squeeze extracts n field elements from the sponge state
	Squeeze(n int) []Element
}

// Hasher is the public interface for one-shot hashing
type Hasher interface {
	// Evaluate hashes the inputs to a single field element
	Evaluate(inputs []Element) Element

	// EvaluateToBytes hashes the inputs and returns the 32-byte big-endian digest
	EvaluateToBytes(inputs []Element) []byte
}

// spongeImpl is the internal implementation of Sponge
type spongeImpl struct {
	sponge *core.PoseidonSponge
}

// hasherImpl is the internal implementation of Hasher
type hasherImpl struct {
	hash *core.PoseidonHash
}

// resolveParameters maps a configuration to a registered parameter table.
// A nil configuration selects the defaults.
func resolveParameters(config *Config) (*Parameters, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, &HashError{
			Code:    ErrInvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}

	table, err := params.DefaultWithSchedule(config.Rate, params.Schedule(config.Schedule))
	if err != nil {
		return nil, &HashError{
			Code:    ErrNoParameters,
			Message: fmt.Sprintf("no parameters for rate %d, schedule %q", config.Rate, config.Schedule),
			Cause:   err,
		}
	}

	return table, nil
}

// NewSponge creates a duplex sponge session from a configuration
func NewSponge(config *Config) (Sponge, error) {
	table, err := resolveParameters(config)
	if err != nil {
		return nil, err
	}

	return &spongeImpl{sponge: core.NewSponge(table)}, nil
}

// NewSpongeWithParameters creates a duplex sponge session from an explicit
// parameter table, bypassing the registry
func NewSpongeWithParameters(parameters *Parameters) (Sponge, error) {
	if parameters == nil {
		return nil, &HashError{
			Code:    ErrInvalidConfig,
			Message: "parameters must not be nil",
		}
	}
	if err := parameters.Validate(); err != nil {
		return nil, &HashError{
			Code:    ErrInvalidConfig,
			Message: "invalid parameters",
			Cause:   err,
		}
	}

	return &spongeImpl{sponge: core.NewSponge(parameters)}, nil
}

// Absorb feeds field elements into the sponge state
func (s *spongeImpl) Absorb(elements []Element) {
	s.sponge.Absorb(elements)
}

// Squeeze extracts n field elements from the sponge state
func (s *spongeImpl) Squeeze(n int) []Element {
	return s.sponge.Squeeze(n)
}

// NewHasher creates a one-shot hasher from a configuration
func NewHasher(config *Config) (Hasher, error) {
	table, err := resolveParameters(config)
	if err != nil {
		return nil, err
	}

	return &hasherImpl{hash: core.NewPoseidonHash(table)}, nil
}

// NewHasherWithParameters creates a one-shot hasher from an explicit
// parameter table, bypassing the registry
func NewHasherWithParameters(parameters *Parameters) (Hasher, error) {
	if parameters == nil {
		return nil, &HashError{
			Code:    ErrInvalidConfig,
			Message: "parameters must not be nil",
		}
	}
	if err := parameters.Validate(); err != nil {
		return nil, &HashError{
			Code:    ErrInvalidConfig,
			Message: "invalid parameters",
			Cause:   err,
		}
	}

	return &hasherImpl{hash: core.NewPoseidonHash(parameters)}, nil
}

// Evaluate hashes the inputs to a single field element
func (h *hasherImpl) Evaluate(inputs []Element) Element {
	return h.hash.Evaluate(inputs)
}

// EvaluateToBytes hashes the inputs and returns the 32-byte big-endian digest
func (h *hasherImpl) EvaluateToBytes(inputs []Element) []byte {
	return h.hash.HashToBytes(inputs)
}
