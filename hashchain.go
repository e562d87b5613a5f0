// Package hashchain implements the HashChain family of exact string
// search algorithms: a factor-oriented filter that hashes overlapping
// q-grams (short fixed-length substrings) of the pattern into a table of
// one-bit fingerprints, then scans the text by walking that table
// backward in strides of Q bytes at a time. Because the filter only needs
// to inspect a handful of bytes per stride instead of every byte, it can
// skip over most of the text without ever comparing it to the pattern
// directly, falling back to a real comparison only once a whole chain of
// fingerprints has matched.
//
// Nine parameter presets reproduce the published reference variants:
//
//	DefaultConfig / HC3Config   Q=3, rolling hash chain
//	HC6Config                   Q=6, rolling hash chain
//	THC2Config                  Q=2, rolling hash chain
//	SHC2Config                  Q=2, plain hash chain
//	SHC6Config                  Q=6, plain hash chain
//	FHC1Config                  Q=1, degenerate single-byte table
//	HC4QVerifyConfig            Q=4, batched Q-way verification
//	WHC3Config                  Q=3, rightmost-guard verification
//	LHC4Config                  Q=4, KMP-linear verification
//
// A typical use:
//
//	m, err := hashchain.New([]byte("needle"), hashchain.DefaultConfig())
//	if err != nil {
//		// handle invalid pattern/config
//	}
//	count := m.Count(haystack)
//	positions := m.FindAll(haystack)
package hashchain

import "github.com/coregx/hashchain/chain"

// Matcher searches text for occurrences of a single fixed pattern, using
// a hash chain table built once at construction time.
type Matcher struct {
	m *chain.Matcher
}

// New builds a Matcher for pattern under cfg. It returns ErrEmptyPattern
// if pattern is empty, ErrPatternTooShort if pattern is shorter than
// cfg.Q, and a wrapped ErrInvalidConfig if cfg itself fails validation.
func New(pattern []byte, cfg Config) (*Matcher, error) {
	cm, err := chain.New(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Matcher{m: cm}, nil
}

// MustNew is like New but panics instead of returning an error.
func MustNew(pattern []byte, cfg Config) *Matcher {
	return &Matcher{m: chain.MustNew(pattern, cfg)}
}

// Pattern returns the pattern the Matcher was built for.
func (m *Matcher) Pattern() []byte {
	return m.m.Pattern()
}

// Count returns the number of (possibly overlapping) occurrences of the
// pattern in text.
func (m *Matcher) Count(text []byte) int {
	return m.m.Count(text)
}

// FindAll returns the start offsets of every (possibly overlapping)
// occurrence of the pattern in text, in ascending order.
func (m *Matcher) FindAll(text []byte) []int {
	return m.m.FindAll(text)
}
