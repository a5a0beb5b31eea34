package heap

// statCounters accumulates lifetime allocator counters. It has no exported
// surface of its own; Stats snapshots it into a public value.
type statCounters struct {
	allocations uint64
	collections uint64
	liveWords   uint64
}

// Stats is a point-in-time snapshot of allocator activity, returned by
// (*Heap).Stats.
type Stats struct {
	// HeapWords is the total usable size of the heap proper, in words
	// (memory_end - heap_start).
	HeapWords uint32
	// FreeWords is the current sum of payload sizes across all 64
	// segregated free lists.
	FreeWords uint32
	// Allocations is the lifetime count of successful Allocate calls.
	Allocations uint64
	// Collections is the lifetime count of completed GC cycles.
	Collections uint64
	// LiveWords is the lifetime running total of words (headers included)
	// claimed by successful Allocate calls. Collections do not subtract the
	// words they reclaim from it.
	LiveWords uint64
}

// Stats reports current allocator activity and heap occupancy.
func (h *Heap) Stats() Stats {
	s := Stats{
		HeapWords:   h.memoryEnd - h.heapStart,
		Allocations: h.stats.allocations,
		Collections: h.stats.collections,
		LiveWords:   h.stats.liveWords,
	}
	for i := range h.lists {
		block := h.lists[i].first
		for block != 0 {
			s.FreeWords += h.sizeOf(block)
			block = virtToPhysOrZero(h.nextFree(block))
		}
	}
	return s
}
