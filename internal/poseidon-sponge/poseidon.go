// Package poseidonsponge provides an algebraic duplex-sponge hash over the
// BLS12-377 scalar field, built on the Poseidon permutation.
//
// This package re-exports all functionality from the internal subpackages
// to maintain a clean, unified API while providing proper separation of concerns.
package poseidonsponge

import (
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/params"
	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/utils"
)

// Re-export core types and functions
type (
	Element            = core.Element
	PoseidonParameters = core.PoseidonParameters
	SpongeState        = core.SpongeState
	DuplexSpongeMode   = core.DuplexSpongeMode
	PoseidonSponge     = core.PoseidonSponge
	PoseidonHash       = core.PoseidonHash
	FieldFriendlyHash  = core.FieldFriendlyHash
	MerkleTree         = core.MerkleTree
	ProofNode          = core.ProofNode
)

// Re-export core constructors and functions
var (
	NewElement           = core.NewElement
	NewElementFromString = core.NewElementFromString
	Elements             = core.Elements
	ElementToBytes       = core.ElementToBytes
	Zero                 = core.Zero
	One                  = core.One
	Modulus              = core.Modulus
	NewSpongeState       = core.NewSpongeState
	Permute              = core.Permute
	NewSponge            = core.NewSponge
	NewPoseidonHash      = core.NewPoseidonHash
	NewMerkleTree        = core.NewMerkleTree
	MerkleRoot           = core.MerkleRoot
	VerifyProof          = core.VerifyProof
)

// Re-export parameter types and functions
type Schedule = params.Schedule

const (
	ScheduleStandard = params.ScheduleStandard
	ScheduleWeights  = params.ScheduleWeights
)

var (
	DefaultParameters             = params.Default
	DefaultParametersWithSchedule = params.DefaultWithSchedule
	RegisterParameters            = params.Register
	ParameterRates                = params.Rates
	ErrNoDefaultParameters        = params.ErrNoDefaultParameters
)

// Re-export utility types and functions
type (
	Config  = utils.Config
	Channel = utils.Channel
)

// Re-export utility constructors and functions
var (
	DefaultConfig = utils.DefaultConfig
	NewChannel    = utils.NewChannel
)
