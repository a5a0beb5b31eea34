package heap

// debug.go carries the allocator's diagnostic dumps, gated on h.debug and
// written through h.logger rather than directly to stdout, so a host
// program can capture or silence them like any other log output.

// logf writes a debug line through h.logger if debugging is enabled. It is
// a no-op otherwise, including when no logger was configured.
func (h *Heap) logf(format string, args ...any) {
	if !h.debug || h.logger == nil {
		return
	}
	h.logger.Printf(format, args...)
}

// DumpHeap walks the heap proper and logs one line per block: its address,
// tag, payload size, and whether its bitmap bit is currently set. Intended
// for interactive debugging, not hot-path use.
func (h *Heap) DumpHeap() {
	cur := h.heapStart
	for cur < h.memoryEnd {
		addr := physToVirt(cur)
		tag := h.tagOf(cur)
		size := h.sizeOf(cur)
		h.logf("block %s: tag=%d size=%d marked=%v", addr, tag, size, h.isMarked(cur))
		cur = h.blockEnd(cur)
	}
}

// DumpFreeLists logs the occupancy of every non-empty segregated free list:
// the payload size it serves (or "64+" for the catch-all list) and how many
// blocks currently sit on it.
func (h *Heap) DumpFreeLists() {
	for i := range h.lists {
		count := 0
		block := h.lists[i].first
		for block != 0 {
			count++
			block = virtToPhysOrZero(h.nextFree(block))
		}
		if count == 0 {
			continue
		}
		if i == largeListIndex {
			h.logf("free list 64+: %d blocks", count)
		} else {
			h.logf("free list %d: %d blocks", i+1, count)
		}
	}
}
