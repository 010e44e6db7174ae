package gfx

import (
	"errors"
	"testing"
)

func TestNewBufferDescriptor(t *testing.T) {
	d, err := NewBufferDescriptor(800, 600, ARGB8888)
	if err != nil {
		t.Fatalf("NewBufferDescriptor: %v", err)
	}
	if d.Stride != 3200 {
		t.Errorf("Stride = %d, want 3200", d.Stride)
	}
	if got := d.SizeBytes(); got != 1920000 {
		t.Errorf("SizeBytes = %d, want 1920000", got)
	}
	if got := d.PixelCount(); got != 480000 {
		t.Errorf("PixelCount = %d, want 480000", got)
	}
	if got := d.BytesPerRow(); got != 3200 {
		t.Errorf("BytesPerRow = %d, want 3200", got)
	}
	if got := d.RowPadding(); got != 0 {
		t.Errorf("RowPadding = %d, want 0", got)
	}
}

func TestNewBufferDescriptorOverflow(t *testing.T) {
	tests := []struct {
		name   string
		width  uint32
		height uint32
		format PixelFormat
	}{
		{"width times bpp overflows", 0xFFFFFFFF, 1, ARGB8888},
		{"total size overflows", 0x40000000, 0x40000000, ARGB8888},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBufferDescriptor(tt.width, tt.height, tt.format)
			if !errors.Is(err, ErrSizeOverflow) {
				t.Errorf("error = %v, want ErrSizeOverflow", err)
			}
		})
	}
}

func TestNewBufferDescriptorInvalidFormat(t *testing.T) {
	bad := PixelFormat(200)
	if _, err := NewBufferDescriptor(800, 600, bad); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewBufferDescriptor error = %v, want ErrInvalidFormat", err)
	}
	if _, err := NewBufferDescriptorWithStride(800, 600, 3200, bad); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewBufferDescriptorWithStride error = %v, want ErrInvalidFormat", err)
	}
}

func TestNewBufferDescriptorWithStride(t *testing.T) {
	// Stride above the row width carries alignment padding.
	d, err := NewBufferDescriptorWithStride(100, 10, 512, ARGB8888)
	if err != nil {
		t.Fatalf("NewBufferDescriptorWithStride: %v", err)
	}
	if got := d.RowPadding(); got != 112 {
		t.Errorf("RowPadding = %d, want 112", got)
	}
	if got := d.SizeBytes(); got != 5120 {
		t.Errorf("SizeBytes = %d, want 5120", got)
	}

	// Stride below one row is rejected.
	_, err = NewBufferDescriptorWithStride(100, 10, 399, ARGB8888)
	if !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride error = %v, want ErrInvalidStride", err)
	}
}

func TestPixelOffset(t *testing.T) {
	d, err := NewBufferDescriptor(800, 600, ARGB8888)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y uint32
		want int
	}{
		{"origin", 0, 0, 0},
		{"next pixel", 1, 0, 4},
		{"next row", 0, 1, 3200},
		{"interior", 10, 20, 64040},
		{"last pixel", 799, 599, 599*3200 + 799*4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.PixelOffset(tt.x, tt.y)
			if err != nil {
				t.Fatalf("PixelOffset(%d,%d): %v", tt.x, tt.y, err)
			}
			if got != tt.want {
				t.Errorf("PixelOffset(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelOffsetOutOfBounds(t *testing.T) {
	d, err := NewBufferDescriptor(800, 600, ARGB8888)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y uint32
	}{
		{"x at width", 800, 0},
		{"y at height", 0, 600},
		{"both out", 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.PixelOffset(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("PixelOffset(%d,%d) error = %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
		})
	}
	if _, err := d.RowOffset(600); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("RowOffset(600) error = %v, want ErrOutOfBounds", err)
	}
}

func TestSubRegion(t *testing.T) {
	d, err := NewBufferDescriptor(100, 100, ARGB8888)
	if err != nil {
		t.Fatal(err)
	}
	sub, offset, err := d.SubRegion(NewRect(10, 20, 30, 40))
	if err != nil {
		t.Fatalf("SubRegion: %v", err)
	}
	if sub.Width != 30 || sub.Height != 40 {
		t.Errorf("sub size = %dx%d, want 30x40", sub.Width, sub.Height)
	}
	// The sub-descriptor keeps the parent stride so rows line up.
	if sub.Stride != d.Stride {
		t.Errorf("sub stride = %d, want parent stride %d", sub.Stride, d.Stride)
	}
	if want := 20*400 + 10*4; offset != want {
		t.Errorf("offset = %d, want %d", offset, want)
	}

	for _, r := range []Rect{
		NewRect(-1, 0, 10, 10),
		NewRect(0, 0, 101, 10),
		NewRect(90, 90, 20, 20),
	} {
		if _, _, err := d.SubRegion(r); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SubRegion(%+v) error = %v, want ErrOutOfBounds", r, err)
		}
	}
}

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		name      string
		f         PixelFormat
		bpp       uint32
		hasAlpha  bool
		grayscale bool
	}{
		{"ARGB8888", ARGB8888, 4, true, false},
		{"XRGB8888", XRGB8888, 4, false, false},
		{"RGB565", RGB565, 2, false, false},
		{"BGRA8888", BGRA8888, 4, true, false},
		{"RGBA8888", RGBA8888, 4, true, false},
		{"RGB888", RGB888, 3, false, false},
		{"BGR888", BGR888, 3, false, false},
		{"Gray8", Gray8, 1, false, true},
		{"Gray16", Gray16, 2, false, true},
		{"Alpha8", Alpha8, 1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
			if got := tt.f.IsGrayscale(); got != tt.grayscale {
				t.Errorf("IsGrayscale() = %v, want %v", got, tt.grayscale)
			}
			if !tt.f.IsValid() {
				t.Errorf("IsValid() = false")
			}
		})
	}
	if PixelFormat(200).IsValid() {
		t.Errorf("arbitrary format value reported valid")
	}
}

func TestAlignedStride(t *testing.T) {
	tests := []struct {
		name      string
		f         PixelFormat
		width     uint32
		alignment uint32
		want      uint32
	}{
		{"already aligned", ARGB8888, 100, 4, 400},
		{"rounds up", RGB888, 100, 4, 300},
		{"rounds up odd", RGB888, 101, 4, 304},
		{"alignment 64", ARGB8888, 100, 64, 448},
		{"alignment 1", Gray8, 13, 1, 13},
		{"alignment 0 means minimum stride", RGB888, 101, 0, 303},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.AlignedStride(tt.width, tt.alignment); got != tt.want {
				t.Errorf("AlignedStride(%d,%d) = %d, want %d", tt.width, tt.alignment, got, tt.want)
			}
		})
	}
}
