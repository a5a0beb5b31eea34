package heap

// sweep reclaims every block whose bitmap bit is still set — proof that
// mark never reached it this cycle — coalescing runs of adjacent
// reclaimable blocks (already-free blocks included) into single free
// blocks, and restores the bitmap invariant (bit set == allocated, not yet
// proven reachable) for every block that survived.
//
// The pass is a single left-to-right scan with a pending free-run carried
// across iterations: a live block flushes the pending run before the scan
// moves past it, so a run never extends across a block that is still
// reachable. Every reclaimed block's own header is retagged None, including
// the ones absorbed into the middle of a run.
func (h *Heap) sweep() {
	h.resetFreeLists()

	var runStart uint32
	haveRun := false

	finalize := func(end uint32) {
		if !haveRun {
			return
		}
		// Every block spans at least a header plus one payload word
		// (Allocate rounds a 0-word request up to 1, and a free block can
		// never have payload size 0), so a run of one or more blocks always
		// has payload >= 1 and always belongs on a free list.
		payload := end - runStart - 1
		h.setHeader(runStart, None, payload)
		h.addToFreeList(runStart, payload)
		haveRun = false
	}

	cur := h.heapStart
	for cur < h.memoryEnd {
		end := h.blockEnd(cur)
		reclaim := h.tagOf(cur) == None || h.isMarked(cur)

		if reclaim {
			h.clearBit(cur)
			h.setHeader(cur, None, h.sizeOf(cur))
			if !haveRun {
				runStart = cur
				haveRun = true
			}
			cur = end
			continue
		}

		finalize(cur)
		h.setBit(cur)
		cur = end
	}
	finalize(h.memoryEnd)
}
