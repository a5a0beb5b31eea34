package heap

import "fmt"

// Addr is a virtual address: a byte offset from the start of the memory
// region handed to Setup. Heap pointers are always word-aligned (a multiple
// of 4); Addr(0) is reserved and means "null / none", matching the VM
// convention this package was built against.
type Addr uint32

// String renders an address the way the original engine's debug dumps do.
func (a Addr) String() string {
	if a == 0 {
		return "<nil>"
	}
	return fmt.Sprintf("0x%08x", uint32(a))
}

// Tag is the engine-defined 8-bit enumeration stored in a block header's low
// byte. This package only knows one tag value by name: None, the reserved
// "free block" tag. Every other value is opaque engine payload.
type Tag uint8

// None is the reserved tag marking a block as free. No allocated block may
// carry it.
const None Tag = 0

// Roots is implemented by the engine (out of scope for this package) to
// supply the three GC roots this collector traces from: the input base, the
// output base, and the local base of the running bytecode frame. Each
// accessor returns a payload pointer, or a sentinel Addr that simply fails
// the pointer-validity test during marking.
type Roots interface {
	RootI() Addr
	RootO() Addr
	RootL() Addr
}

// FailFunc is the engine-supplied fatal-failure sink (spec: "fail(fmt,
// args...)"). It is invoked when a post-collection allocation retry still
// cannot find space (a failed region allocation in Setup is reported as a
// returned error instead), and it
// must not return — there is no recoverable error path past this point
// (every other entry point in this package has already committed to the
// heap being usable). If a caller-supplied FailFunc does return anyway,
// Heap treats that as a bug in the engine and panics immediately after.
type FailFunc func(format string, args ...any)
