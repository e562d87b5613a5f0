package chain

import "github.com/coregx/hashchain/internal/bytecmp"

// scanQVerify implements the Q-verify strategy (hc4-qverify): once a chain
// walk succeeds all the way back to the start of the pattern, the single
// matched window is not the only alignment worth checking — every one of
// the Q alignments that share that same chain gets verified directly,
// since the hash chain alone can't distinguish between them. There is no
// full-pattern hash gate here; each candidate is verified by memcmp.
func (m *Matcher) scanQVerify(y []byte, positions *[]int) int {
	cfg := m.cfg
	x := m.pattern
	patLen := len(x)
	n := len(y)
	q := cfg.Q
	mq1 := patLen - q + 1

	count := 0
	pos := patLen - 1
	for pos < n {
		h := cfg.chainHash(y, pos)
		v := m.table.get(h)
		if v == 0 {
			pos += mq1
			continue
		}

		endSecond := pos - (patLen - 2*q)
		matched := true
		for pos >= endSecond {
			pos -= q
			h = cfg.chainHash(y, pos)
			if v&fingerprint(h) == 0 {
				matched = false
				break
			}
			v = m.table.get(h)
		}
		if matched {
			lastStart := endSecond - q
			firstStart := lastStart - (q - 1)
			for start := firstStart; start <= lastStart; start++ {
				if start >= 0 && start+patLen <= n && bytecmp.Equal(y[start:start+patLen], x) {
					count++
					if positions != nil {
						*positions = append(*positions, start)
					}
				}
			}
			pos = endSecond - 1
		}
		pos += mq1
	}
	return count
}
