package chain

// scanLinear implements the Linear strategy (lhc4): the same
// rightmost-match guard as Weaker, but verification is handed off to a KMP
// automaton seeded with the position it last gave up at, instead of
// restarting a memcmp from scratch on every candidate. That keeps total
// verification work linear in the length of the text regardless of how
// many candidates the chain filter lets through.
func (m *Matcher) scanLinear(y []byte, positions *[]int) int {
	cfg := m.cfg
	x := m.pattern
	patLen := len(x)
	n := len(y)
	q := cfg.Q
	mq1 := patLen - q + 1
	kmp := m.kmp

	count := 0
	pos := patLen - 1
	rightmost := 0
	nextVerify := 0
	patternPos := 0

	for pos < n {
		h := cfg.chainHash(y, pos)
		v := m.table.get(h)
		if v == 0 {
			pos += mq1
			continue
		}

		endFirst := pos - (patLen - q)
		scanBackLimit := endFirst
		if rightmost > scanBackLimit {
			scanBackLimit = rightmost
		}
		scanBackLimit += q
		rightmost = pos

		matched := true
		for pos >= scanBackLimit {
			pos -= q
			h = cfg.chainHash(y, pos)
			if v&fingerprint(h) == 0 {
				matched = false
				break
			}
			v = m.table.get(h)
		}
		if !matched {
			pos += mq1
			continue
		}

		windowStart := endFirst - (q - 1)
		if windowStart > nextVerify {
			nextVerify = windowStart
			patternPos = 0
		}

		for patternPos >= nextVerify-windowStart {
			for patternPos < patLen && nextVerify < n && x[patternPos] == y[nextVerify] {
				patternPos++
				nextVerify++
			}
			if patternPos == patLen {
				count++
				if positions != nil {
					*positions = append(*positions, nextVerify-patLen)
				}
			}
			patternPos = int(kmp[patternPos])
			if patternPos < 0 {
				patternPos++
				nextVerify++
			}
		}

		pos = nextVerify + patLen - 1 - patternPos
	}
	return count
}
