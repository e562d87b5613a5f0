package chain

import "github.com/coregx/hashchain/internal/conv"

// Table is the hash-chain fingerprint table: one 32-bit word per bucket,
// each bit in that word recording whether a q-gram whose low 5 hash bits
// equal the bit's position precedes the bucket's q-gram (Q bytes to its
// left) somewhere in the pattern.
type Table struct {
	mask  uint32
	words []uint32
}

func newTable(alpha int) *Table {
	size := conv.IntToUint32(1 << uint(alpha))
	return &Table{
		mask:  size - 1,
		words: make([]uint32, size),
	}
}

// get returns the fingerprint bitmask stored for hash h.
func (t *Table) get(h uint32) uint32 {
	return t.words[h&t.mask]
}

// set ORs fp into the bucket for hash h.
func (t *Table) set(h uint32, fp uint32) {
	t.words[h&t.mask] |= fp
}

// isZero reports whether the bucket for hash h currently has no bits set.
func (t *Table) isZero(h uint32) bool {
	return t.words[h&t.mask] == 0
}
