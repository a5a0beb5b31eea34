package heap

// SetHeapStart commits the region to a layout: the bitmap occupies the words
// starting at ptr, sized to cover every word from there to the end of the
// region (bitmap included), and the heap proper begins immediately after it
// and runs to the end of the region. This is exactly bitmap_allocation in
// the original engine: the bitmap covers memory_end - heap_start words,
// sized once, with no iteration to a fixed point.
func (h *Heap) SetHeapStart(ptr Addr) {
	bmStart := virtToPhys(ptr)
	bmWords := bitmapWords(h.memoryEnd - bmStart)

	h.bitmapStart = bmStart
	h.heapStart = bmStart + bmWords

	for i := h.bitmapStart; i < h.heapStart; i++ {
		h.words[i] = 0
	}

	h.resetFreeLists()

	heapSize := h.memoryEnd - h.heapStart
	if heapSize < 2 {
		// Too small to hold even one header plus its one mandatory payload
		// word; leave the heap with no free blocks at all.
		return
	}
	payload := heapSize - 1
	h.setHeader(h.heapStart, None, payload)
	h.addToFreeList(h.heapStart, payload)
}

// Allocate reserves a block of size payload words tagged tag and returns the
// address of its payload (the header sits at offset -1 from the returned
// address; see headerOf), or calls fail and does not return if no space can
// be found even after a collection. A size-0 request is rounded up to 1: a
// free block can never have payload size 0, so every block this package
// creates — allocated or free — reserves at least one payload word.
//
// The retry shape is: try the free lists, run a collection, try once more.
func (h *Heap) Allocate(tag Tag, size uint32) Addr {
	if tag == None {
		panic("heap: Allocate called with the reserved free-block tag")
	}
	if size == 0 {
		size = 1
	}

	block := h.findFreeBlock(size)
	if block == 0 {
		h.collect()
		block = h.findFreeBlock(size)
	}
	if block == 0 {
		h.fail("heap: out of memory allocating %d words (tag %d)", size, tag)
		panic("heap: FailFunc returned")
	}

	h.setHeader(block, tag, size)
	h.setBit(block)
	h.stats.allocations++
	h.stats.liveWords += uint64(size) + 1
	return payloadAddr(block)
}

// BlockSize returns the payload size, in words, of the block at p.
func (h *Heap) BlockSize(p Addr) uint32 {
	return h.sizeOf(headerOf(p))
}

// BlockTag returns the tag stored in the block at p.
func (h *Heap) BlockTag(p Addr) Tag {
	return h.tagOf(headerOf(p))
}
