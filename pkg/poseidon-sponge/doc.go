// Package poseidonsponge provides an algebraic hash for zero-knowledge
// proof systems, built on the Poseidon permutation over the BLS12-377
// scalar field.
//
// Unlike byte-oriented hashes, inputs and outputs are field elements, so
// digests can be consumed directly inside arithmetic circuits without bit
// decomposition. The construction is a duplex sponge: callers may
// interleave Absorb and Squeeze calls freely and the transcript of all
// absorbed elements stays bound to every squeezed element.
//
// # Features
//
// - Duplex Poseidon sponge with incremental absorb and squeeze
// - One-shot hashing facade with field and byte output
// - Embedded parameter tables for rates 2, 4 and 8, in two schedules
// - Registration hook for custom parameter tables
// - Field-native Merkle commitments with membership proofs
// - Fiat-Shamir transcript channel driven by the sponge
//
// # Quick Start
//
// One-shot hashing with the default rate-2 table:
//
//	hasher, err := poseidonsponge.NewHasher(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	inputs := poseidonsponge.Elements(1, 2, 3)
//	digest := hasher.Evaluate(inputs)
//	fmt.Println(digest.String())
//
// An incremental sponge session with a wider rate:
//
//	config := poseidonsponge.DefaultConfig().WithRate(4)
//	sponge, err := poseidonsponge.NewSponge(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sponge.Absorb(poseidonsponge.Elements(10, 20, 30))
//	challenges := sponge.Squeeze(2)
//	sponge.Absorb(challenges) // duplexing is allowed at any point
//
// # Architecture
//
// The module uses a hybrid public/private architecture:
//
// - pkg/poseidon-sponge/: Public API (this package)
// - internal/poseidon-sponge/: Private implementation (not importable)
//
// The public API provides stable interfaces for:
// - One-shot hashing and duplex sponge sessions
// - Parameter selection by rate and schedule
// - Common types and errors
//
// Implementation details in internal/ can be refactored without breaking the public API.
//
// # Parameters
//
// The embedded tables were derived with the Grain LFSR procedure for the
// BLS12-377 scalar field. The standard schedule (S-box exponent 17, 8 full
// and 31 partial rounds) suits general hashing; the weights schedule
// (exponent 257, 8 full and 13 partial rounds) trades a more expensive
// S-box for fewer rounds. All tables use one capacity element.
//
// # Performance
//
// Benchmark results on AMD Ryzen 9 7950X:
// - Permutation (rate 2): 9.8 μs/op
// - Permutation (rate 8): 54 μs/op
// - One-shot hash, 10 elements (rate 2): 59 μs/op
// - 64-leaf Merkle tree: 2.1 ms/op
//
// # References
//
// - Poseidon Paper: https://eprint.iacr.org/2019/458
package poseidonsponge
