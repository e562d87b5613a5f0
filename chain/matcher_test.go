package chain

import (
	"sort"
	"strings"
	"testing"
)

func allConfigs() map[string]Config {
	return map[string]Config{
		"hc3":         HC3Config(),
		"hc6":         HC6Config(),
		"thc2":        THC2Config(),
		"shc2":        SHC2Config(),
		"shc6":        SHC6Config(),
		"fhc1":        FHC1Config(),
		"hc4qverify":  HC4QVerifyConfig(),
		"whc3":        WHC3Config(),
		"lhc4":        LHC4Config(),
	}
}

// naiveCount is the trusted reference: a brute-force scan counting every
// (possibly overlapping) occurrence of pattern in text.
func naiveCount(text, pattern []byte) int {
	count := 0
	for i := 0; i+len(pattern) <= len(text); i++ {
		if string(text[i:i+len(pattern)]) == string(pattern) {
			count++
		}
	}
	return count
}

func naivePositions(text, pattern []byte) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if string(text[i:i+len(pattern)]) == string(pattern) {
			out = append(out, i)
		}
	}
	return out
}

func TestMatcherAgainstNaiveAcrossConfigs(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		text    string
	}{
		{"no match", "xyz", "the quick brown fox jumps over the lazy dog"},
		{"single match", "fox", "the quick brown fox jumps over the lazy dog"},
		{"match at start", "the", "the quick brown fox"},
		{"match at end", "dog", "the lazy dog"},
		{"overlapping matches", "aaa", "aaaaaa"},
		{"pattern equals text", "hello", "hello"},
		{"repeated short pattern", "ab", "ababababab"},
		{"many scattered matches", "cat", "cat scat cater concatenate cats cat"},
		{"pattern longer than usual alignment", "mississippi", "mississippimississippi"},
		{"binary-ish bytes", "\x01\x02\x03", "\x00\x01\x02\x03\x04\x01\x02\x03"},
	}

	for name, cfg := range allConfigs() {
		for _, c := range cases {
			t.Run(name+"/"+c.name, func(t *testing.T) {
				if len(c.pattern) < cfg.Q {
					t.Skip("pattern shorter than Q for this config")
				}
				m, err := New([]byte(c.pattern), cfg)
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				got := m.Count([]byte(c.text))
				want := naiveCount([]byte(c.text), []byte(c.pattern))
				if got != want {
					t.Errorf("Count(%q,%q) = %d, want %d", c.pattern, c.text, got, want)
				}

				gotPos := m.FindAll([]byte(c.text))
				wantPos := naivePositions([]byte(c.text), []byte(c.pattern))
				sort.Ints(gotPos)
				if !equalInts(gotPos, wantPos) {
					t.Errorf("FindAll(%q,%q) = %v, want %v", c.pattern, c.text, gotPos, wantPos)
				}
			})
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMatcherMinimumPatternLength(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			pattern := strings.Repeat("x", cfg.Q)
			m, err := New([]byte(pattern), cfg)
			if err != nil {
				t.Fatalf("New with m==Q: %v", err)
			}
			text := "wwww" + pattern + "wwww" + pattern
			got := m.Count([]byte(text))
			want := naiveCount([]byte(text), []byte(pattern))
			if got != want {
				t.Errorf("Count = %d, want %d", got, want)
			}
		})
	}
}

func TestNewRejectsEmptyPattern(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	if err != ErrEmptyPattern {
		t.Errorf("New(nil) error = %v, want ErrEmptyPattern", err)
	}
}

func TestNewRejectsShortPattern(t *testing.T) {
	cfg := HC6Config() // Q=6
	_, err := New([]byte("ab"), cfg)
	if err != ErrPatternTooShort {
		t.Errorf("New with short pattern error = %v, want ErrPatternTooShort", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := Config{Strategy: Base, Q: 3, Alpha: 2} // Alpha too small
	_, err := New([]byte("abc"), cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestTextShorterThanPattern(t *testing.T) {
	m := MustNew([]byte("hello"), DefaultConfig())
	if got := m.Count([]byte("hi")); got != 0 {
		t.Errorf("Count with text shorter than pattern = %d, want 0", got)
	}
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew(nil, DefaultConfig())
}
