package chain

// Matcher holds a preprocessed hash chain table for a single pattern and
// scans text against it using the strategy its Config selects.
type Matcher struct {
	cfg     Config
	pattern []byte
	table   *Table
	hm      uint32
	kmp     []int32
}

// New builds a Matcher for pattern under the given Config. It returns
// ErrEmptyPattern if pattern is empty, ErrPatternTooShort if pattern is
// shorter than cfg.Q, and a *ConfigError (which wraps ErrInvalidConfig) if
// cfg itself is invalid.
func New(pattern []byte, cfg Config) (*Matcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(pattern) < cfg.Q {
		return nil, ErrPatternTooShort
	}

	x := make([]byte, len(pattern))
	copy(x, pattern)

	tbl, hm := build(x, cfg)

	m := &Matcher{cfg: cfg, pattern: x, table: tbl, hm: hm}
	if cfg.Strategy == Linear {
		m.kmp = buildFailure(x)
	}
	return m, nil
}

// MustNew is like New but panics instead of returning an error. Useful for
// package-level Matcher variables built from constant patterns.
func MustNew(pattern []byte, cfg Config) *Matcher {
	m, err := New(pattern, cfg)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the pattern the Matcher was built for.
func (m *Matcher) Pattern() []byte {
	return m.pattern
}

// Count returns the number of (possibly overlapping) occurrences of the
// pattern in text.
func (m *Matcher) Count(text []byte) int {
	return m.scan(text, nil)
}

// FindAll returns the start offsets of every (possibly overlapping)
// occurrence of the pattern in text, in ascending order.
func (m *Matcher) FindAll(text []byte) []int {
	var positions []int
	m.scan(text, &positions)
	return positions
}

// scan dispatches to the scanning algorithm selected by the Matcher's
// Strategy. When positions is non-nil, every match's start offset is
// appended to it; the return value is always the match count.
func (m *Matcher) scan(text []byte, positions *[]int) int {
	if len(text) < len(m.pattern) {
		return 0
	}
	switch m.cfg.Strategy {
	case QVerify:
		return m.scanQVerify(text, positions)
	case Weaker:
		return m.scanWeaker(text, positions)
	case Linear:
		return m.scanLinear(text, positions)
	default:
		return m.scanBase(text, positions)
	}
}
