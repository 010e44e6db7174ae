package gfx

import "testing"

func TestBufferHandlePacking(t *testing.T) {
	tests := []struct {
		name       string
		id         uint32
		generation uint32
		raw        uint64
	}{
		{"first slot first generation", 1, 0, 0x0000000000000001},
		{"generation in high bits", 7, 3, 0x0000000300000007},
		{"max id", 0xFFFFFFFF, 0, 0x00000000FFFFFFFF},
		{"max generation", 0, 0xFFFFFFFF, 0xFFFFFFFF00000000},
		{"both max", 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBufferHandle(tt.id, tt.generation)
			if got := h.Raw(); got != tt.raw {
				t.Errorf("Raw = %#x, want %#x", got, tt.raw)
			}
			if got := h.ID(); got != tt.id {
				t.Errorf("ID = %d, want %d", got, tt.id)
			}
			if got := h.Generation(); got != tt.generation {
				t.Errorf("Generation = %d, want %d", got, tt.generation)
			}
			if got := HandleFromRaw(tt.raw); got != h {
				t.Errorf("HandleFromRaw(%#x) = %v, want %v", tt.raw, got, h)
			}
		})
	}
}

func TestBufferHandleValidity(t *testing.T) {
	if InvalidHandle.IsValid() {
		t.Errorf("zero handle should be invalid")
	}
	if !NewBufferHandle(1, 0).IsValid() {
		t.Errorf("non-zero handle should be valid")
	}
	// A recycled slot with a bumped generation is a distinct handle.
	if NewBufferHandle(5, 1) == NewBufferHandle(5, 2) {
		t.Errorf("generations should distinguish handles for the same slot")
	}
}
