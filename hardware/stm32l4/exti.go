// Package stm32l4 describes the EXTI (extended interrupt and event
// controller) block of the STM32L4 family.  EXTIRegisterMap is a byte exact
// overlay of the peripheral; EXTI is the line oriented API on top of it.
//
// Sources:
// RM0351 Reference manual, STM32L4x5 and STM32L4x6, section 14.5
// RM0432 Reference manual, STM32L4+ Series, section 16.5
package stm32l4

//go:generate go run ../../tools/sysdec/cmd/sysdec -f -p stm32l4 -o exti_fields.go stm32l4

import (
	"unsafe"

	"stm32exti/hardware/volatile"
)

// EXTIBase is the bus address of the EXTI block (APB2 + 0x400).
const EXTIBase = 0x4001_0400

// EXTIRegisterMap is the EXTI block as the silicon lays it out.  Bank 1
// holds lines 0..31, bank 2 holds lines 32..40.
type EXTIRegisterMap struct {
	InterruptMask1     volatile.Register32 //0x00 IMR1
	EventMask1         volatile.Register32 //0x04 EMR1
	RisingTrigger1     volatile.Register32 //0x08 RTSR1
	FallingTrigger1    volatile.Register32 //0x0C FTSR1
	SoftwareInterrupt1 volatile.Register32 //0x10 SWIER1
	Pending1           volatile.Register32 //0x14 PR1, write 1 to clear
	reserved00         [2]uint32           //0x18, 0x1C
	InterruptMask2     volatile.Register32 //0x20 IMR2
	EventMask2         volatile.Register32 //0x24 EMR2
	RisingTrigger2     volatile.Register32 //0x28 RTSR2
	FallingTrigger2    volatile.Register32 //0x2C FTSR2
	SoftwareInterrupt2 volatile.Register32 //0x30 SWIER2
	Pending2           volatile.Register32 //0x34 PR2, write 1 to clear
}

// Overlay returns the register map located at base.  base must point at a
// real EXTI block (or at memory at least 0x38 bytes long that stands in for
// one).
func Overlay(base unsafe.Pointer) *EXTIRegisterMap {
	return (*EXTIRegisterMap)(base)
}

func (m *EXTIRegisterMap) register(id RegisterID) *volatile.Register32 {
	switch id {
	case IMR1:
		return &m.InterruptMask1
	case EMR1:
		return &m.EventMask1
	case RTSR1:
		return &m.RisingTrigger1
	case FTSR1:
		return &m.FallingTrigger1
	case SWIER1:
		return &m.SoftwareInterrupt1
	case PR1:
		return &m.Pending1
	case IMR2:
		return &m.InterruptMask2
	case EMR2:
		return &m.EventMask2
	case RTSR2:
		return &m.RisingTrigger2
	case FTSR2:
		return &m.FallingTrigger2
	case SWIER2:
		return &m.SoftwareInterrupt2
	case PR2:
		return &m.Pending2
	}
	panic("stm32l4: no EXTI register " + id.String())
}

// Load reads the whole register.  Reading has no side effects on any EXTI
// register, including the pending registers.
func (m *EXTIRegisterMap) Load(id RegisterID) uint32 {
	return m.register(id).Get()
}

// Store writes the whole register.  On the device the pending registers
// clear the bits written as 1; on plain memory this is an ordinary store.
func (m *EXTIRegisterMap) Store(id RegisterID, value uint32) {
	m.register(id).Set(value)
}
