package chain

import "testing"

func TestBuildLeadingQgramsAreNonZeroAndNotSelfReferential(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			x := []byte("abcdefghijklmnop")
			if len(x) < cfg.Q {
				t.Skip("pattern shorter than Q")
			}
			tbl, _ := build(x, cfg)
			endFirst := cfg.Q - 1
			stop := 2*cfg.Q - 1
			if len(x) < stop {
				stop = len(x)
			}
			for p := endFirst; p < stop; p++ {
				var f uint32
				if cfg.Rolling {
					f = cfg.anchorHash(x, p)
				} else {
					f = cfg.chainHash(x, p)
				}
				if tbl.isZero(f) {
					t.Errorf("leading qgram at position %d has a zero table entry", p)
				}
				if tbl.get(f) == fingerprint(f) {
					t.Errorf("leading qgram at position %d points to itself", p)
				}
			}
		})
	}
}

func TestFullPatternHashDeterministic(t *testing.T) {
	cfg := HC3Config()
	x := []byte("abcdefgh")
	h1 := fullPatternHash(x, cfg)
	h2 := fullPatternHash(append([]byte(nil), x...), cfg)
	if h1 != h2 {
		t.Errorf("fullPatternHash not deterministic: %#x vs %#x", h1, h2)
	}
}

func TestFullPatternHashNonRollingIsWalkTerminal(t *testing.T) {
	cfg := SHC6Config()
	x := []byte("abcdefghijklmnop") // len 16, Q=6: terminal position is 9, not Q-1=5.
	want := cfg.chainHash(x, 9)
	got := fullPatternHash(x, cfg)
	if got != want {
		t.Errorf("fullPatternHash for non-rolling family = %#x, want %#x (chain hash at the walk's terminal position)", got, want)
	}
}

func TestFullPatternHashNonRollingMatchesScannerTerminal(t *testing.T) {
	// The scanner's own backward walk overwrites its hash at each step
	// rather than accumulating one, so Hm must equal whatever hash that
	// walk lands on last, not the hash of the first q-gram specifically.
	cfg := SHC2Config()
	x := []byte("abc") // len 3, Q=2: walk never steps back past m-1, terminal is position 2.
	want := cfg.chainHash(x, 2)
	got := fullPatternHash(x, cfg)
	if got != want {
		t.Errorf("fullPatternHash = %#x, want %#x", got, want)
	}
}

func TestRollingChainLengthPositive(t *testing.T) {
	for name, cfg := range allConfigs() {
		if !cfg.Rolling {
			continue
		}
		if got := rollingChainLength(cfg); got <= 0 {
			t.Errorf("%s: rollingChainLength = %d, want > 0", name, got)
		}
	}
}
