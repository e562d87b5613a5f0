package chain

import "github.com/coregx/hashchain/internal/bytecmp"

// scanWeaker implements the Weaker strategy (whc3): the backward walk
// never re-examines text bytes a previous window's walk already filtered,
// tracked by a monotonically increasing rightmost-match guard, at the
// cost of verifying each candidate with a direct memcmp instead of a
// full-pattern hash gate.
func (m *Matcher) scanWeaker(y []byte, positions *[]int) int {
	cfg := m.cfg
	x := m.pattern
	patLen := len(x)
	n := len(y)
	q := cfg.Q
	mq1 := patLen - q + 1

	count := 0
	pos := patLen - 1
	rightmost := 0
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
		if matched {
			pos = endFirst
			start := pos - (q - 1)
			if start >= 0 && start+patLen <= n && bytecmp.Equal(y[start:start+patLen], x) {
				count++
				if positions != nil {
					*positions = append(*positions, start)
				}
			}
		}
		pos += mq1
	}
	return count
}
