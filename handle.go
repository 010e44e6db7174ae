package gfx

// BufferHandle is an opaque 64-bit reference to a kernel-managed
// buffer. The low 32 bits carry the slot id and the high 32 bits a
// generation counter, so a recycled slot never matches a stale handle.
// The zero handle is invalid.
//
// Layout: one uint64; 8 bytes.
type BufferHandle uint64

// InvalidHandle is the null buffer handle.
const InvalidHandle BufferHandle = 0

// NewBufferHandle packs a slot id and generation into a handle.
func NewBufferHandle(id, generation uint32) BufferHandle {
	return BufferHandle(uint64(generation)<<32 | uint64(id))
}

// HandleFromRaw reinterprets a raw 64-bit value as a handle.
func HandleFromRaw(raw uint64) BufferHandle {
	return BufferHandle(raw)
}

// IsValid reports whether the handle is non-zero.
func (h BufferHandle) IsValid() bool {
	return h != InvalidHandle
}

// ID returns the slot id from the low 32 bits.
func (h BufferHandle) ID() uint32 {
	return uint32(h)
}

// Generation returns the generation counter from the high 32 bits.
func (h BufferHandle) Generation() uint32 {
	return uint32(h >> 32)
}

// Raw returns the packed 64-bit value.
func (h BufferHandle) Raw() uint64 {
	return uint64(h)
}
