package chain

// build constructs the hash chain table and full-pattern hash for pattern
// x under cfg, dispatching to the rolling or non-rolling family depending
// on cfg.Rolling. Both families share the same skeleton: zero the table,
// chain the q-grams that have a predecessor, fill in the q-grams that
// don't, then compute the full-pattern hash.
func build(x []byte, cfg Config) (*Table, uint32) {
	if cfg.Rolling {
		return buildRolling(x, cfg)
	}
	return buildSimple(x, cfg)
}

// buildRolling implements the preprocessing step of the rolling family
// (hc3, hc6, thc2): every anchor position from the end of the second
// q-gram to the end of the pattern gets its own chain, walked backward in
// strides of Q and folded through the rolling hash, bounded by
// rollingChainLength so very long patterns don't pay for arbitrarily long
// chains.
func buildRolling(x []byte, cfg Config) (*Table, uint32) {
	q := cfg.Q
	q2 := q * 2
	endFirst := q - 1
	endSecond := q2 - 1
	m := len(x)

	tbl := newTable(cfg.Alpha)
	chainLimit := rollingChainLength(cfg)

	for anchor := endSecond; anchor < m; anchor++ {
		h := cfg.anchorHash(x, anchor)
		startChain := anchor - q
		stopChain := startChain - chainLimit
		if endFirst > stopChain {
			stopChain = endFirst
		}
		for chainPos := startChain; chainPos >= stopChain; chainPos -= q {
			hPrev := h
			h = rollStep(h, cfg.chainHash(x, chainPos), cfg.RollShift)
			tbl.set(hPrev, fingerprint(h))
		}
	}

	// Leading q-grams have no predecessor to carry a fingerprint of them,
	// but still need a nonzero entry so the scanner's initial anchor probe
	// doesn't mistake "unseen" for "no match possible" when the pattern is
	// short enough that step 1 never ran.
	stop := endSecond
	if m < stop {
		stop = m
	}
	for p := endFirst; p < stop; p++ {
		f := cfg.anchorHash(x, p)
		if tbl.isZero(f) {
			tbl.set(f, fingerprint(^f))
		}
	}

	return tbl, fullPatternHash(x, cfg)
}

// rollingChainLength bounds how many q-grams back a single anchor's chain
// is walked during preprocessing, in text positions: enough roll steps of
// RollShift bits each to shift an anchor's contribution past the Alpha
// bits that index the table, plus one extra step of margin, times Q. Computed as an exact integer ceiling division rather than the
// original's floating-point log2/ceil, since the table size is always an
// exact power of two and its log2 is therefore just Alpha.
func rollingChainLength(cfg Config) int {
	s2 := int(cfg.RollShift)
	if s2 < 1 {
		s2 = 1
	}
	ceilDiv := (cfg.Alpha + s2 - 1) / s2
	return (ceilDiv + 1) * cfg.Q
}

// buildSimple implements the preprocessing step of the non-rolling family
// (shc2, shc6, hc4-qverify, whc3, lhc4, fhc1): only the last Q anchor
// positions get their own chain, since a text window always realigns to
// one of Q possible phases relative to the pattern's end.
func buildSimple(x []byte, cfg Config) (*Table, uint32) {
	q := cfg.Q
	q2 := q * 2
	endFirst := q - 1
	m := len(x)

	tbl := newTable(cfg.Alpha)

	start := q
	if m < q2 {
		start = m - endFirst
	}

	for chainNo := start; chainNo >= 1; chainNo-- {
		h := cfg.chainHash(x, m-chainNo)
		for chainPos := m - chainNo - q; chainPos >= endFirst; chainPos -= q {
			hPrev := h
			h = cfg.chainHash(x, chainPos)
			tbl.set(hPrev, fingerprint(h))
		}
	}

	stop := q2 - 1
	if m < stop {
		stop = m
	}
	for p := endFirst; p < stop; p++ {
		f := cfg.chainHash(x, p)
		if tbl.isZero(f) {
			tbl.set(f, fingerprint(^f))
		}
	}

	return tbl, fullPatternHash(x, cfg)
}

// fullPatternHash computes Hm, the hash value the scanner compares against
// once it has walked the chain all the way back to the start of the
// pattern. Mirrors the scanner's own backward walk from m-1 down by Q: for
// the rolling family each step folds into a running hash, so the result is
// the cumulative hash of the whole pattern; for the non-rolling family
// each step simply overwrites the hash, so the result is the chain hash at
// the walk's terminal position — the smallest p >= Q-1 with
// p ≡ (m-1) mod Q — not necessarily Q-1 itself unless m ≡ 0 (mod Q).
func fullPatternHash(x []byte, cfg Config) uint32 {
	m := len(x)
	if !cfg.Rolling {
		h := cfg.chainHash(x, m-1)
		for pos := m - 1 - cfg.Q; pos >= cfg.Q-1; pos -= cfg.Q {
			h = cfg.chainHash(x, pos)
		}
		return h
	}
	h := cfg.anchorHash(x, m-1)
	for pos := m - 1 - cfg.Q; pos >= cfg.Q-1; pos -= cfg.Q {
		h = rollStep(h, cfg.chainHash(x, pos), cfg.RollShift)
	}
	return h
}
