// Package extisim is a software model of the STM32L4 EXTI block.  It obeys
// the same write rules as the silicon (pending flags clear on a written 1,
// software interrupts latch pending flags) and lets the caller play the part
// of the signals feeding the lines.
package extisim

import (
	"sync"

	"stm32exti/hardware/stm32l4"
)

// direct lines come out of reset unmasked
const (
	resetIMR1 = stm32l4.EXTI_IMR1Reset
	resetIMR2 = stm32l4.EXTI_IMR2Reset
)

// Outcome is what one edge on a line did.
type Outcome struct {
	Pending   bool //pending flag was latched
	Interrupt bool //interrupt request raised towards the NVIC
	Event     bool //event pulse raised towards the wakeup logic
}

// Device implements stm32l4.Port.  It is safe to drive edges from one
// goroutine while another programs the registers, which is how the
// hardware races the software.
type Device struct {
	mu         sync.Mutex
	regs       [stm32l4.NumRegisters]uint32
	interrupts int
	events     int
}

// New returns a device in its reset state.
func New() *Device {
	d := &Device{}
	d.Reset()
	return d
}

// Reset returns every register to its reset value and zeroes the counters.
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regs = [stm32l4.NumRegisters]uint32{}
	d.regs[stm32l4.IMR1] = resetIMR1
	d.regs[stm32l4.IMR2] = resetIMR2
	d.interrupts = 0
	d.events = 0
}

// Load reads a register; no register changes when read.
func (d *Device) Load(id stm32l4.RegisterID) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regs[id]
}

// Store applies a write with the register's hardware semantics.  Reserved
// bits are not implemented and are dropped.
func (d *Device) Store(id stm32l4.RegisterID, value uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	def := id.Def()
	value &= def.Valid
	switch def.Access {
	case stm32l4.ReadWrite:
		d.regs[id] = value
	case stm32l4.WriteOneToClear:
		d.regs[id] &^= value
		//the software interrupt bit goes with the pending flag
		d.regs[stm32l4.RegisterFor(stm32l4.SoftwareInterrupt, def.Bank)] &^= value
	case stm32l4.WriteOneToTrigger:
		fresh := value &^ d.regs[id]
		if fresh == 0 {
			return
		}
		d.regs[id] |= fresh
		for _, l := range stm32l4.LinesOf(def.Bank, stm32l4.SoftwareInterrupt, fresh) {
			d.latch(l)
		}
	}
}

// Edge presents a transition on line l.  A configurable line latches its
// pending flag if the edge is selected and then requests an interrupt and
// an event as its masks allow.  A direct line has no latch and propagates
// whenever it is unmasked.
func (d *Device) Edge(l stm32l4.Line, rising bool) Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !l.Valid() {
		return Outcome{}
	}
	if !l.Configurable() {
		return d.propagate(l)
	}
	kind := stm32l4.FallingTrigger
	if rising {
		kind = stm32l4.RisingTrigger
	}
	if !d.bit(kind, l) {
		return Outcome{}
	}
	return d.latch(l)
}

func (d *Device) latch(l stm32l4.Line) Outcome {
	d.regs[stm32l4.RegisterFor(stm32l4.Pending, l.Bank())] |= l.Bit()
	o := d.propagate(l)
	o.Pending = true
	return o
}

func (d *Device) propagate(l stm32l4.Line) Outcome {
	var o Outcome
	if d.bit(stm32l4.InterruptMask, l) {
		o.Interrupt = true
		d.interrupts++
	}
	if d.bit(stm32l4.EventMask, l) {
		o.Event = true
		d.events++
	}
	return o
}

func (d *Device) bit(kind stm32l4.Kind, l stm32l4.Line) bool {
	return d.regs[stm32l4.RegisterFor(kind, l.Bank())]&l.Bit() != 0
}

// Interrupts is the number of interrupt requests raised since reset.
func (d *Device) Interrupts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interrupts
}

// Events is the number of event pulses raised since reset.
func (d *Device) Events() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.events
}
