package hashchain

import "github.com/coregx/hashchain/chain"

// Sentinel errors and error types re-exported from the chain package.
var (
	ErrEmptyPattern    = chain.ErrEmptyPattern
	ErrPatternTooShort = chain.ErrPatternTooShort
	ErrInvalidConfig   = chain.ErrInvalidConfig
)

// ConfigError describes which Config field failed validation and why.
type ConfigError = chain.ConfigError

// BuildError wraps a failure to preprocess a pattern into a hash chain table.
type BuildError = chain.BuildError
