package chain

import "testing"

func TestTableSetGet(t *testing.T) {
	tbl := newTable(5) // ASIZE=32
	if !tbl.isZero(7) {
		t.Fatalf("new table should be all zero")
	}
	tbl.set(7, fingerprint(3))
	if tbl.isZero(7) {
		t.Fatalf("expected bucket 7 to be nonzero after set")
	}
	if tbl.get(7)&fingerprint(3) == 0 {
		t.Fatalf("expected bucket 7 to carry fingerprint(3)")
	}
}

func TestTableSetOrsBits(t *testing.T) {
	tbl := newTable(5)
	tbl.set(1, fingerprint(2))
	tbl.set(1, fingerprint(9))
	v := tbl.get(1)
	if v&fingerprint(2) == 0 || v&fingerprint(9) == 0 {
		t.Fatalf("expected both fingerprints to be present, got %#x", v)
	}
}

func TestTableMasksHashToBucketRange(t *testing.T) {
	tbl := newTable(5) // 32 buckets
	tbl.set(0xFFFFFFFF, fingerprint(1))
	if tbl.isZero(31) {
		t.Fatalf("hash 0xFFFFFFFF should mask down into bucket 31")
	}
}
