package chain

import "github.com/coregx/hashchain/internal/bytecmp"

// scanBase implements the Base strategy scan shared by shc2, thc2, hc3,
// hc6, shc6 and fhc1: probe the anchor hash at the rightmost position of
// each candidate window, walk the chain backward in strides of Q as long
// as the fingerprint keeps matching, and once the walk reaches the start
// of the pattern, verify with the full-pattern hash before paying for a
// memcmp.
func (m *Matcher) scanBase(y []byte, positions *[]int) int {
	cfg := m.cfg
	x := m.pattern
	patLen := len(x)
	n := len(y)
	q := cfg.Q
	mq1 := patLen - q + 1

	count := 0
	pos := patLen - 1
	for pos < n {
		var h uint32
		if cfg.Rolling {
			h = cfg.anchorHash(y, pos)
		} else {
			h = cfg.chainHash(y, pos)
		}
		v := m.table.get(h)
		if v != 0 {
			endSecond := pos - (patLen - 2*q)
			matched := true
			for pos >= endSecond {
				pos -= q
				if cfg.Rolling {
					h = rollStep(h, cfg.chainHash(y, pos), cfg.RollShift)
				} else {
					h = cfg.chainHash(y, pos)
				}
				if v&fingerprint(h) == 0 {
					matched = false
					break
				}
				v = m.table.get(h)
			}
			if matched {
				pos = endSecond - q
				if h == m.hm {
					start := pos - (q - 1)
					if start >= 0 && start+patLen <= n && bytecmp.Equal(y[start:start+patLen], x) {
						count++
						if positions != nil {
							*positions = append(*positions, start)
						}
					}
				}
			}
		}
		pos += mq1
	}
	return count
}
