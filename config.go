package hashchain

import "github.com/coregx/hashchain/chain"

// Config, Strategy and the preset constructors are re-exported from the
// chain package so callers never need to import it directly.
type Config = chain.Config

// Strategy selects which scanning and verification algorithm a Matcher
// uses. See the constants below for what each one trades off.
type Strategy = chain.Strategy

const (
	Base    = chain.Base
	QVerify = chain.QVerify
	Weaker  = chain.Weaker
	Linear  = chain.Linear
)

// DefaultConfig returns the hc3 parameter set: a Q=3 rolling hash chain.
func DefaultConfig() Config { return chain.DefaultConfig() }

// HC3Config reproduces hc3: Q=3, rolling, ASIZE=2048.
func HC3Config() Config { return chain.HC3Config() }

// HC6Config reproduces hc6: Q=6, rolling, ASIZE=4096.
func HC6Config() Config { return chain.HC6Config() }

// THC2Config reproduces thc2: Q=2, rolling, ASIZE=2048.
func THC2Config() Config { return chain.THC2Config() }

// SHC2Config reproduces the Q=2 member of the plain (non-rolling) family.
func SHC2Config() Config { return chain.SHC2Config() }

// SHC6Config reproduces shc6: Q=6, non-rolling, ASIZE=4096.
func SHC6Config() Config { return chain.SHC6Config() }

// FHC1Config reproduces fhc1: Q=1, degenerate single-byte table.
func FHC1Config() Config { return chain.FHC1Config() }

// HC4QVerifyConfig reproduces hc4-qverify: Q=4, batched Q-way verification.
func HC4QVerifyConfig() Config { return chain.HC4QVerifyConfig() }

// WHC3Config reproduces whc3: Q=3, rightmost-guard verification.
func WHC3Config() Config { return chain.WHC3Config() }

// LHC4Config reproduces lhc4: Q=4, KMP-linear verification.
func LHC4Config() Config { return chain.LHC4Config() }
