package core

import "fmt"

// MerkleTree commits to a vector of field elements with a field-friendly
// hash. Leaves, interior nodes and the root are all single field elements,
// which keeps openings cheap to re-check inside arithmetic circuits.
type MerkleTree struct {
	hash   FieldFriendlyHash
	root   Element
	leaves []Element
	levels [][]Element
}

// ProofNode is one step of a Merkle opening: the sibling digest and the
// side it sits on.
type ProofNode struct {
	Hash    Element
	IsRight bool // true if the sibling is the right child
}

// NewMerkleTree hashes every leaf and builds all interior levels. A level
// with an odd node pairs the trailing node with itself.
func NewMerkleTree(hash FieldFriendlyHash, leaves []Element) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("cannot create Merkle tree with empty leaves")
	}

	hashed := make([]Element, len(leaves))
	for i := range leaves {
		hashed[i] = hash.Evaluate(leaves[i : i+1])
	}

	levels := [][]Element{hashed}
	currentLevel := hashed

	for len(currentLevel) > 1 {
		nextLevel := make([]Element, 0, (len(currentLevel)+1)/2)

		for i := 0; i < len(currentLevel); i += 2 {
			var node Element
			if i+1 < len(currentLevel) {
				node = hash.Evaluate([]Element{currentLevel[i], currentLevel[i+1]})
			} else {
				node = hash.Evaluate([]Element{currentLevel[i], currentLevel[i]})
			}
			nextLevel = append(nextLevel, node)
		}

		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	return &MerkleTree{
		hash:   hash,
		root:   currentLevel[0],
		leaves: hashed,
		levels: levels,
	}, nil
}

// Root returns the Merkle root.
func (mt *MerkleTree) Root() Element {
	return mt.root
}

// NumLeaves returns the number of committed leaves.
func (mt *MerkleTree) NumLeaves() int {
	return len(mt.leaves)
}

// Proof generates a Merkle opening for the leaf at the given index.
func (mt *MerkleTree) Proof(index int) ([]ProofNode, error) {
	if index < 0 || index >= len(mt.leaves) {
		return nil, fmt.Errorf("index %d out of range [0, %d)", index, len(mt.leaves))
	}

	var proof []ProofNode
	currentIndex := index

	for level := 0; level < len(mt.levels)-1; level++ {
		currentLevel := mt.levels[level]

		var siblingIndex int
		var isRight bool
		if currentIndex%2 == 0 {
			siblingIndex = currentIndex + 1
			isRight = true
		} else {
			siblingIndex = currentIndex - 1
			isRight = false
		}

		// A trailing odd node was paired with itself when the tree was
		// built, so its proof step repeats the node.
		if siblingIndex >= len(currentLevel) {
			siblingIndex = currentIndex
		}

		proof = append(proof, ProofNode{
			Hash:    currentLevel[siblingIndex],
			IsRight: isRight,
		})

		currentIndex /= 2
	}

	return proof, nil
}

// VerifyProof checks a Merkle opening against the root. The index binds the
// proof to a leaf position: each step's claimed side must match the
// position bit at that depth.
func VerifyProof(hash FieldFriendlyHash, root, leaf Element, proof []ProofNode, index int) bool {
	if index < 0 {
		return false
	}

	node := hash.Evaluate([]Element{leaf})
	currentIndex := index

	for _, step := range proof {
		if step.IsRight != (currentIndex%2 == 0) {
			return false
		}
		if step.IsRight {
			node = hash.Evaluate([]Element{node, step.Hash})
		} else {
			node = hash.Evaluate([]Element{step.Hash, node})
		}
		currentIndex /= 2
	}

	return node.Equal(&root)
}

// MerkleRoot computes just the root of the given leaves.
func MerkleRoot(hash FieldFriendlyHash, leaves []Element) (Element, error) {
	tree, err := NewMerkleTree(hash, leaves)
	if err != nil {
		return Element{}, err
	}
	return tree.Root(), nil
}
