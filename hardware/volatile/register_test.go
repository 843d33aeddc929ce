package volatile

import (
	"testing"
	"unsafe"
)

func TestRegisterSize(t *testing.T) {
	var r Register32
	if unsafe.Sizeof(r) != 4 {
		t.Errorf("expected Register32 to be 4 bytes, but was %d", unsafe.Sizeof(r))
	}
	var block [3]Register32
	if unsafe.Sizeof(block) != 12 {
		t.Errorf("expected no padding between registers, but block is %d bytes", unsafe.Sizeof(block))
	}
}

func TestBitHelpers(t *testing.T) {
	var r Register32
	r.Set(0x0000_00F0)
	r.SetBits(0x1)
	checkValue(t, &r, 0xF1)
	r.ClearBits(0x30)
	checkValue(t, &r, 0xC1)
	if !r.HasBits(0x40) {
		t.Errorf("expected bit 6 to be set")
	}
	if r.HasBits(0x0E) {
		t.Errorf("expected bits 1-3 to be clear")
	}
}

func TestReplaceBits(t *testing.T) {
	var r Register32
	r.Set(0xFFFF_FFFF)
	r.ReplaceBits(0x5, 0x7, 4)
	checkValue(t, &r, 0xFFFF_FFDF)
	//value wider than the mask must not leak outside the field
	r.ReplaceBits(0xFF, 0x3, 0)
	checkValue(t, &r, 0xFFFF_FFDF)
	r.ReplaceBits(0, 0x3, 0)
	checkValue(t, &r, 0xFFFF_FFDC)
}

func checkValue(t *testing.T, r *Register32, expected uint32) {
	t.Helper()
	if got := r.Get(); got != expected {
		t.Errorf("expected register to be 0x%08x but got 0x%08x", expected, got)
	}
}
