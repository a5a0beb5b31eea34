package heap

// GC runs one full mark-and-sweep collection cycle, tracing from all three
// engine roots (spec: RootI, RootO, RootL) and reclaiming everything left
// unmarked. It is safe to call with an empty heap or with SetRoots never
// having been called — in the latter case every root accessor is simply
// never invoked, per the zero value of Roots being absent.
func (h *Heap) GC() {
	h.collect()
}

// collect is GC's implementation, factored out so Allocate can trigger a
// collection internally without going through the exported, no-argument
// entry point twice in a stack trace.
func (h *Heap) collect() {
	if h.roots != nil {
		h.mark(h.roots.RootI())
		h.mark(h.roots.RootO())
		h.mark(h.roots.RootL())
	}
	h.sweep()
	h.stats.collections++
}
