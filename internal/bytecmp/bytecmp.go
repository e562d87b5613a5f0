// Package bytecmp provides a SIMD-within-a-register byte equality check
// for the verification step of a hash-chain match: once the chain filter
// has agreed a candidate window is worth checking, this is what actually
// confirms it.
package bytecmp

import "encoding/binary"

// Equal reports whether a and b are byte-for-byte identical. It compares
// eight bytes at a time as a single uint64 XOR, the same generic fallback
// technique used when no architecture-specific vector instructions are
// available: a zero XOR result means every byte in that chunk matched, so
// the common case touches each cache line once instead of looping byte by
// byte.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		av := binary.LittleEndian.Uint64(a[i : i+8])
		bv := binary.LittleEndian.Uint64(b[i : i+8])
		if av^bv != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
