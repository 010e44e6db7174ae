package gfx

// BufferUsage hints how a buffer's contents change over time, letting
// allocators place the memory accordingly.
type BufferUsage uint32

const (
	// UsageDefault is general use with no specific placement hint.
	UsageDefault BufferUsage = iota
	// UsageStatic marks rarely modified contents.
	UsageStatic
	// UsageDynamic marks frequently modified contents.
	UsageDynamic
	// UsageStreaming marks contents rewritten every frame.
	UsageStreaming
	// UsageReadOnly marks contents written, then only read.
	UsageReadOnly
	// UsageWriteOnly marks contents only ever written.
	UsageWriteOnly
)

// String returns the usage name.
func (u BufferUsage) String() string {
	switch u {
	case UsageDefault:
		return "Default"
	case UsageStatic:
		return "Static"
	case UsageDynamic:
		return "Dynamic"
	case UsageStreaming:
		return "Streaming"
	case UsageReadOnly:
		return "ReadOnly"
	case UsageWriteOnly:
		return "WriteOnly"
	default:
		return "Unknown"
	}
}

// BufferCapabilities is a typed bitmask of buffer traits. Named
// predicate and combination methods replace raw integer operators;
// bits outside the defined set are carried through combinations
// unchanged and ignored by predicates, so newer producers can set
// flags older consumers do not know.
type BufferCapabilities uint32

const (
	// CapCPUAccessible means the buffer can be mapped for CPU access.
	CapCPUAccessible BufferCapabilities = 1 << iota
	// CapGPUAccessible means the GPU can sample or scan out the buffer.
	CapGPUAccessible
	// CapDMACapable means the buffer can be a DMA target.
	CapDMACapable
	// CapContiguous means the backing memory is physically contiguous.
	CapContiguous
	// CapVideoMemory means the buffer lives in VRAM.
	CapVideoMemory
	// CapShareable means the buffer can be shared across processes.
	CapShareable
	// CapResizable means the buffer can be reallocated with a new size.
	CapResizable
	// CapReadable means reads are permitted.
	CapReadable
	// CapWritable means writes are permitted.
	CapWritable
)

// Has reports whether all bits of flag are set.
func (c BufferCapabilities) Has(flag BufferCapabilities) bool {
	return c&flag == flag
}

// With returns the capabilities with flag added.
func (c BufferCapabilities) With(flag BufferCapabilities) BufferCapabilities {
	return c | flag
}

// Without returns the capabilities with flag removed.
func (c BufferCapabilities) Without(flag BufferCapabilities) BufferCapabilities {
	return c &^ flag
}

// Bits returns the raw bit pattern, including any unknown bits.
func (c BufferCapabilities) Bits() uint32 {
	return uint32(c)
}
