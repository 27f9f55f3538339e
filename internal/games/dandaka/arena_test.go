package dandaka

import "testing"

func TestSweep(t *testing.T) {
	type item struct {
		id   int
		gone bool
	}
	a, b, c, d := &item{1, false}, &item{2, true}, &item{3, false}, &item{4, true}
	items := []*item{a, b, c, d}

	kept := sweep(items, func(it *item) bool { return it.gone })

	if len(kept) != 2 || kept[0] != a || kept[1] != c {
		t.Fatalf("unexpected sweep result: %+v", kept)
	}
	// Tail of the backing array must not keep swept entities alive.
	if items[2] != nil || items[3] != nil {
		t.Errorf("tail not cleared: %+v", items[2:])
	}
}

func TestSweepEmptyAndNoneFlagged(t *testing.T) {
	if got := sweep([]int(nil), func(int) bool { return true }); len(got) != 0 {
		t.Errorf("sweep(nil) = %v", got)
	}

	xs := []int{1, 2, 3}
	got := sweep(xs, func(int) bool { return false })
	if len(got) != 3 {
		t.Errorf("nothing flagged, expected 3 items, got %v", got)
	}
}
