// Package volatile provides memory cells for memory mapped I/O.  A Register32
// can be overlaid onto a device's register block (via unsafe.Pointer) or
// allocated in ordinary memory, in which case it behaves as a plain word.
// Every access is a single load or store that the compiler can neither elide
// nor merge.
package volatile

import "sync/atomic"

// Register32 is one 32 bit device register.  Its size is exactly four bytes
// so structs of them lay out like the hardware does.
type Register32 struct {
	Reg uint32
}

// Get returns the value in the register.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Set writes value to the register.
func (r *Register32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
}

// SetBits reads the register, ORs in value, and writes it back.  This is
// a read-modify-write, not an atomic operation on the device.
func (r *Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits reads the register, clears the bits in value, and writes it back.
func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any of the bits in value are set.
func (r *Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the field mask<<pos with value<<pos.  Use it
// with the *Mask constants for multi-bit fields.
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}
