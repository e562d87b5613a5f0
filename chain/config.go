// Package chain implements the HashChain family of factor-based exact
// string search algorithms: a q-gram hash table is built from the pattern,
// each entry carrying a one-bit fingerprint of the q-gram that should
// precede it in the text. Scanning walks backward through the text in
// strides of Q, following the fingerprint chain, and only falls back to a
// byte-for-byte comparison once a full chain of hashes has matched.
package chain

import "fmt"

// Strategy selects which scanning and verification algorithm a Matcher
// uses once the hash chain has matched all the way back to the start of
// the pattern.
type Strategy int

const (
	// Base is the plain hash-chain scan: a single verification window per
	// successful chain walk, gated by a comparison against the
	// full-pattern hash before the memcmp runs. This is the strategy used
	// by shc2, thc2, hc3, hc6, shc6 and fhc1.
	Base Strategy = iota

	// QVerify batches Q adjacent alignments into a single verification
	// step once the chain walk succeeds, trading a wider memcmp sweep for
	// fewer chain walks per window. There is no full-pattern hash check:
	// every one of the Q candidate alignments is compared directly. Used
	// by hc4-qverify.
	QVerify

	// Weaker adds a monotonically increasing "rightmost match" guard that
	// prevents the backward walk from re-examining text bytes it has
	// already filtered on a previous window, at the cost of a weaker
	// (non-Hm-checked) verification step. Used by whc3.
	Weaker

	// Linear adds the same rightmost-match guard as Weaker, but verifies
	// candidates with a KMP automaton seeded from the last verified
	// position instead of re-running memcmp from scratch, giving linear
	// total verification work across the whole text. Used by lhc4.
	Linear
)

func (s Strategy) String() string {
	switch s {
	case Base:
		return "Base"
	case QVerify:
		return "QVerify"
	case Weaker:
		return "Weaker"
	case Linear:
		return "Linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Config holds every tunable parameter of a HashChain matcher. The nine
// named presets below (HC3Config, ...) reproduce the parameter sets of
// the known reference variants; Config itself is general enough to
// describe hash-chain matchers outside that set.
type Config struct {
	// Strategy selects the scan/verify algorithm. See the Strategy
	// constants for what each one trades off.
	Strategy Strategy

	// Q is the q-gram length in bytes. The hash functions below must be
	// able to read Q bytes backward from any position they're given, so Q
	// also bounds the shortest pattern this Config can search for.
	Q int

	// Alpha is log2 of the hash table size: the table holds 1<<Alpha
	// 32-bit words. Must be at least 5 (table size at least 32).
	Alpha int

	// Shift is the bit shift applied to each byte folded into the chain
	// hash (and, for non-rolling configurations, the only hash in use).
	Shift uint

	// Rolling selects which hash family this Config belongs to. When
	// true, chain positions are folded into a single running hash via
	// RollShift instead of being rehashed from scratch at every step, and
	// a separate AnchorShift governs the hash used to probe the table at
	// the start of each candidate window.
	Rolling bool

	// AnchorShift is the bit shift used by the anchor hash. Only
	// meaningful when Rolling is true; for non-rolling configurations the
	// anchor and chain hash are the same function.
	AnchorShift uint

	// RollShift is the bit shift applied to the accumulated hash at each
	// rolling update: H <- (H << RollShift) + chainHash(pos). Only
	// meaningful when Rolling is true.
	RollShift uint
}

// ASize returns the hash table size, 1<<Alpha words.
func (c Config) ASize() int {
	return 1 << uint(c.Alpha)
}

// TableMask returns the bitmask used to index the hash table: ASize()-1.
func (c Config) TableMask() uint32 {
	return uint32(c.ASize() - 1)
}

func (c Config) validate() error {
	if c.Q < 1 {
		return &ConfigError{Field: "Q", Reason: "must be at least 1"}
	}
	if c.Alpha < 5 {
		return &ConfigError{Field: "Alpha", Reason: "must be at least 5 (table size at least 32)"}
	}
	if c.Shift == 0 && c.Q > 1 {
		return &ConfigError{Field: "Shift", Reason: "must be nonzero when Q > 1"}
	}
	if c.Rolling {
		if c.AnchorShift == 0 {
			return &ConfigError{Field: "AnchorShift", Reason: "must be nonzero for a rolling configuration"}
		}
		if c.RollShift == 0 {
			return &ConfigError{Field: "RollShift", Reason: "must be nonzero for a rolling configuration"}
		}
	}
	switch c.Strategy {
	case Base, QVerify, Weaker, Linear:
	default:
		return &ConfigError{Field: "Strategy", Reason: "unknown strategy"}
	}
	if c.Rolling && c.Strategy != Base {
		return &ConfigError{Field: "Strategy", Reason: "only the Base strategy is defined for a rolling hash family"}
	}
	return nil
}

// DefaultConfig returns the hc3 parameter set: a Q=3 rolling hash chain,
// a reasonable general-purpose default with a short minimum pattern length.
func DefaultConfig() Config {
	return HC3Config()
}

// HC3Config reproduces hc3: Q=3, rolling, ASIZE=2048.
func HC3Config() Config {
	return Config{Strategy: Base, Q: 3, Alpha: 11, Shift: 1, Rolling: true, AnchorShift: 3, RollShift: 4}
}

// HC6Config reproduces hc6: Q=6, rolling, ASIZE=4096.
func HC6Config() Config {
	return Config{Strategy: Base, Q: 6, Alpha: 12, Shift: 1, Rolling: true, AnchorShift: 2, RollShift: 4}
}

// THC2Config reproduces thc2: Q=2, rolling, ASIZE=2048.
func THC2Config() Config {
	return Config{Strategy: Base, Q: 2, Alpha: 11, Shift: 1, Rolling: true, AnchorShift: 3, RollShift: 4}
}

// SHC2Config reproduces the Q=2 member of the simple (non-rolling) family,
// by analogy with SHC6Config: single chain shift, ASIZE=2048.
func SHC2Config() Config {
	return Config{Strategy: Base, Q: 2, Alpha: 11, Shift: 3}
}

// SHC6Config reproduces shc6: Q=6, non-rolling, ASIZE=4096.
func SHC6Config() Config {
	return Config{Strategy: Base, Q: 6, Alpha: 12, Shift: 2}
}

// FHC1Config reproduces fhc1: Q=1, non-rolling, a degenerate single-byte
// table (ASIZE=256). Shift is unused when Q==1; the value set here has no
// effect on hashing.
func FHC1Config() Config {
	return Config{Strategy: Base, Q: 1, Alpha: 8, Shift: 8}
}

// HC4QVerifyConfig reproduces hc4-qverify: Q=4, non-rolling, ASIZE=4096,
// batching Q adjacent alignments into each verification step.
func HC4QVerifyConfig() Config {
	return Config{Strategy: QVerify, Q: 4, Alpha: 12, Shift: 3}
}

// WHC3Config reproduces whc3: Q=3, non-rolling, ASIZE=2048, with the
// rightmost-match guard that avoids rescanning already-filtered text.
func WHC3Config() Config {
	return Config{Strategy: Weaker, Q: 3, Alpha: 11, Shift: 3}
}

// LHC4Config reproduces lhc4: Q=4, non-rolling, ASIZE=4096, verifying
// candidates with a KMP automaton for linear total verification work.
func LHC4Config() Config {
	return Config{Strategy: Linear, Q: 4, Alpha: 12, Shift: 3}
}
