package heap

import "github.com/cznic/mathutil"

// numFreeLists is the number of segregated free lists: 0..62 hold blocks of
// exact payload size 1..63; list 63 holds every block of payload size >= 64.
const numFreeLists = 64

// largeListIndex is the index of the catch-all, best-fit list.
const largeListIndex = numFreeLists - 1

// freeListHead is the {first, last} pair recorded for one segregated free
// list. Both are physical word indices; 0 (the null address) means empty.
type freeListHead struct {
	first, last uint32
}

// classOf returns which free list a block of payload size size belongs to:
// min(63, size-1). size must be >= 1 (a size-0 request has already been
// normalized to 1 by the caller before it ever reaches the free lists).
func classOf(size uint32) int {
	return mathutil.Min(largeListIndex, int(size)-1)
}

// resetFreeLists clears all 64 {first,last} pairs. Called once by
// SetHeapStart and again at the start of every sweep.
func (h *Heap) resetFreeLists() {
	h.lists = [numFreeLists]freeListHead{}
}

// addToFreeList appends block (whose header must already carry tag None and
// the given size) to the list for its size class, setting its next-field to
// terminate the list.
func (h *Heap) addToFreeList(block, size uint32) {
	h.setNextFree(block, 0)
	i := classOf(size)
	if h.lists[i].first == 0 {
		h.lists[i].first = block
	} else {
		h.setNextFree(h.lists[i].last, physToVirt(block))
	}
	h.lists[i].last = block
}

// removeFirst pops the head of list i and returns it, or 0 if the list is
// empty.
func (h *Heap) removeFirst(i int) uint32 {
	block := h.lists[i].first
	if block == 0 {
		return 0
	}
	next := h.nextFree(block)
	if next == 0 {
		h.lists[i] = freeListHead{}
	} else {
		h.lists[i].first = virtToPhys(next)
	}
	return block
}

// isValidSizeBlock reports whether a free block of payload size blockSize
// can serve a request for size words: either an exact fit, or big enough
// that splitting leaves a residue of at least 1 payload word. A block of
// exactly size+1 is never valid — splitting it would leave a 0-size
// residue, which violates the invariant that every free block has
// payload size >= 1.
func isValidSizeBlock(blockSize, size uint32) bool {
	if blockSize == size {
		return true
	}
	return blockSize > size+1
}

// splitAndReturn carves size payload words out of the front of a block
// whose header currently reports payload size blockSize, enlisting the
// residue (if any). block's own header is left untouched; the caller
// (Allocate) always overwrites it with the real tag and the requested
// size, so there is nothing for this function to write there.
func (h *Heap) splitAndReturn(block, blockSize, size uint32) uint32 {
	if blockSize > size+1 {
		residue := block + size + 1
		residueSize := blockSize - size - 1
		h.setHeader(residue, None, residueSize)
		h.addToFreeList(residue, residueSize)
	}
	// blockSize == size: no split, the whole block is consumed as-is.
	return block
}

// findFreeBlock is an exact-fit lookup on the fixed-size lists, falling
// back to a scan of the next-larger fixed lists (skipping the one that
// would split invalidly), and finally to best-fit on the large list. size
// must be >= 1 — Allocate rounds a 0-word request up before calling this.
func (h *Heap) findFreeBlock(size uint32) uint32 {
	i := classOf(size)
	if i == largeListIndex {
		return h.findBestFreeBlock(size)
	}

	if h.lists[i].first != 0 {
		// Exact fit: list i holds only blocks of payload size i+1 == size.
		return h.removeFirst(i)
	}

	// i+1 holds payload size i+2 == size+1, which would split to a 0-size
	// residue; skip straight to i+2.
	for j := i + 2; j < largeListIndex; j++ {
		if h.lists[j].first != 0 {
			block := h.removeFirst(j)
			blockSize := uint32(j + 1)
			return h.splitAndReturn(block, blockSize, size)
		}
	}

	return h.findBestFreeBlock(size)
}

// findBestFreeBlock is a best-fit scan over list 63: a linear walk keeping
// the smallest valid candidate seen so far, stopping early on an exact
// match.
func (h *Heap) findBestFreeBlock(size uint32) uint32 {
	var best, bestPrev uint32
	var prev uint32
	curr := h.lists[largeListIndex].first

	for curr != 0 {
		currSize := h.sizeOf(curr)
		if currSize == size {
			best, bestPrev = curr, prev
			break
		}
		if isValidSizeBlock(currSize, size) && (best == 0 || currSize < h.sizeOf(best)) {
			best, bestPrev = curr, prev
		}
		prev = curr
		curr = virtToPhysOrZero(h.nextFree(curr))
	}

	if best == 0 {
		return 0
	}

	bestSize := h.sizeOf(best)
	bestNext := h.nextFree(best)

	// Detach best from list 63.
	if bestPrev == 0 {
		h.lists[largeListIndex].first = virtToPhysOrZero(bestNext)
	} else {
		h.setNextFree(bestPrev, bestNext)
	}
	if h.lists[largeListIndex].last == best {
		h.lists[largeListIndex].last = bestPrev
	}

	if bestSize == size {
		return best
	}

	residue := best + size + 1
	residueSize := bestSize - size - 1
	h.setHeader(residue, None, residueSize)
	if classOf(residueSize) != largeListIndex {
		// The residue has dropped into a fixed-size class.
		h.addToFreeList(residue, residueSize)
		return best
	}

	// A residue still >= 64 words takes best's place in list 63, keeping
	// best's link to its successor.
	h.setNextFree(residue, bestNext)
	if bestPrev == 0 {
		h.lists[largeListIndex].first = residue
	} else {
		h.setNextFree(bestPrev, physToVirt(residue))
	}
	if bestNext == 0 {
		h.lists[largeListIndex].last = residue
	}

	return best
}

// virtToPhysOrZero translates a, unless it is the null address, in which
// case it stays 0. Free-list walking treats 0 as "end of list" throughout.
func virtToPhysOrZero(a Addr) uint32 {
	if a == 0 {
		return 0
	}
	return virtToPhys(a)
}
