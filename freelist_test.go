package heap

import "testing"

func TestClassOfExactAndLargeClasses(t *testing.T) {
	cases := []struct {
		size uint32
		want int
	}{
		{1, 0},
		{63, 62},
		{64, largeListIndex},
		{1000, largeListIndex},
	}
	for _, c := range cases {
		if got := classOf(c.size); got != c.want {
			t.Errorf("classOf(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestFreedBlockAddressIsReusedAfterGC(t *testing.T) {
	h := newTestHeap(t, 4096)
	h.SetRoots(&fakeRoots{}) // nothing ever rooted

	p := h.Allocate(tagPair, 5)
	h.GC() // p is unrooted: reclaimed and coalesced back into one free block

	q := h.Allocate(tagPair, 5)
	if q != p {
		t.Errorf("Allocate after GC returned %s, want reuse of freed block %s", q, p)
	}
}

func TestAllocateSplitsOversizedFreeBlock(t *testing.T) {
	h := newTestHeap(t, 4096)

	small := h.Allocate(tagPair, 4)
	if small == 0 {
		t.Fatal("Allocate returned null")
	}
	stats := h.Stats()
	// 4096/4 = 1024 heap+bitmap words total; carving a 4-word block out of
	// a single giant free block must leave the remainder on the free lists,
	// not silently donate it to the allocation.
	if stats.FreeWords == 0 {
		t.Fatal("expected leftover free words after a small allocation out of a large free block")
	}
	if stats.FreeWords+5 >= stats.HeapWords {
		t.Errorf("FreeWords = %d too close to HeapWords = %d; the allocated words were not taken off the free lists", stats.FreeWords, stats.HeapWords)
	}
}

func TestFindFreeBlockSkipsInvalidOneWordLargerList(t *testing.T) {
	h := newTestHeap(t, 4096)
	roots := &fakeRoots{}
	h.SetRoots(roots)

	// Pin a live block on either side of the target so sweep can't
	// coalesce it away into the rest of the free heap, giving it an
	// isolated payload size of exactly 6 once freed.
	roots.i = h.Allocate(tagPair, 1)
	target := h.Allocate(tagPair, 6)
	roots.o = h.Allocate(tagPair, 1)

	h.GC() // target is unrooted: reclaimed in isolation, size 6 preserved
	if h.BlockSize(target) != 6 {
		t.Fatalf("setup invariant broken: expected an isolated 6-word free block, got size %d", h.BlockSize(target))
	}

	// Asking for 5 words must not split the size-6 block (that would leave
	// a 0-word residue); it must fall through to the remaining giant free
	// block and leave the size-6 block untouched on its list.
	q := h.Allocate(tagPair, 5)
	if q == 0 {
		t.Fatal("Allocate(_, 5) returned null")
	}
	if q == target {
		t.Errorf("Allocate(_, 5) reused the size-6 block; splitting it would leave an invalid 0-word residue")
	}
	if h.BlockTag(target) != None {
		t.Errorf("the size-6 block was consumed; it should still be free")
	}
}
