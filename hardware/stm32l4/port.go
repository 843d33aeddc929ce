package stm32l4

import (
	"errors"
	"fmt"
)

// Port is whole-register access to an EXTI block.  *EXTIRegisterMap is the
// real thing; tests and the bench use plain memory or a simulated device.
type Port interface {
	Load(id RegisterID) uint32
	Store(id RegisterID, value uint32)
}

var (
	ErrInvalidLine     = errors.New("no such EXTI line")
	ErrNotConfigurable = errors.New("EXTI line has no edge selection")
	ErrInvalidEdge     = errors.New("bad EXTI edge selection")
)

// EXTI is line level access to the controller.  It holds no state of its
// own, so any number of them may share a Port.  Nothing here is atomic with
// respect to interrupts: callers reconfiguring a line from more than one
// context must provide their own exclusion.
type EXTI struct {
	port Port
}

// NewEXTI returns the controller reached through p.
func NewEXTI(p Port) *EXTI {
	return &EXTI{port: p}
}

// Read returns the whole register.  Reading a pending register does not
// clear it.
func (e *EXTI) Read(id RegisterID) uint32 {
	return e.port.Load(id)
}

// Write stores value with its reserved bits forced to zero.  For the
// pending registers value is the set of flags to clear; never pass a value
// obtained by reading the register, as that also clears flags latched
// after the read was made.
func (e *EXTI) Write(id RegisterID, value uint32) {
	e.port.Store(id, value&Registers[id].Valid)
}

// Get reads the bit for l in the register of role kind.  Lines the register
// does not implement read as false.
func (e *EXTI) Get(kind Kind, l Line) bool {
	if !Supports(kind, l) {
		return false
	}
	return e.Read(RegisterFor(kind, l.Bank()))&l.Bit() != 0
}

// Set changes the bit for l in the register of role kind and reports
// whether anything was written.  Nothing is written if the register does
// not implement the line.  Pending flags can only be cleared and software
// interrupts can only be raised; the opposite requests are refused.
func (e *EXTI) Set(kind Kind, l Line, on bool) bool {
	if !Supports(kind, l) {
		return false
	}
	id := RegisterFor(kind, l.Bank())
	switch kind {
	case Pending:
		if on {
			return false
		}
		e.Write(id, l.Bit())
		return true
	case SoftwareInterrupt:
		if !on {
			return false
		}
		//written 0s are ignored, so only this line's bit is stored; echoing
		//a read back would re-arm lines cleared since the read
		e.Write(id, l.Bit())
		return true
	}
	value := e.Read(id)
	if on {
		value |= l.Bit()
	} else {
		value &^= l.Bit()
	}
	e.Write(id, value)
	return true
}

// Interrupt mask helpers.  Unmasking lets the line's pending flag reach the
// NVIC; the result is false for lines beyond Line40.
func (e *EXTI) UnmaskInterrupt(l Line) bool   { return e.Set(InterruptMask, l, true) }
func (e *EXTI) MaskInterrupt(l Line) bool     { return e.Set(InterruptMask, l, false) }
func (e *EXTI) InterruptUnmasked(l Line) bool { return e.Get(InterruptMask, l) }

// Event mask helpers, the same for the wakeup event output.
func (e *EXTI) UnmaskEvent(l Line) bool   { return e.Set(EventMask, l, true) }
func (e *EXTI) MaskEvent(l Line) bool     { return e.Set(EventMask, l, false) }
func (e *EXTI) EventUnmasked(l Line) bool { return e.Get(EventMask, l) }

// Rising edge helpers.  Only configurable lines have trigger bits; the
// others report false and nothing is written.
func (e *EXTI) EnableRisingTrigger(l Line) bool  { return e.Set(RisingTrigger, l, true) }
func (e *EXTI) DisableRisingTrigger(l Line) bool { return e.Set(RisingTrigger, l, false) }
func (e *EXTI) RisingTriggerEnabled(l Line) bool { return e.Get(RisingTrigger, l) }

// Falling edge helpers, as above.
func (e *EXTI) EnableFallingTrigger(l Line) bool  { return e.Set(FallingTrigger, l, true) }
func (e *EXTI) DisableFallingTrigger(l Line) bool { return e.Set(FallingTrigger, l, false) }
func (e *EXTI) FallingTriggerEnabled(l Line) bool { return e.Get(FallingTrigger, l) }

// TriggerSoftware raises the line's pending flag from software.
func (e *EXTI) TriggerSoftware(l Line) bool {
	return e.Set(SoftwareInterrupt, l, true)
}

// Pending reports whether the line has latched a trigger.
func (e *EXTI) Pending(l Line) bool {
	return e.Get(Pending, l)
}

// PendingLines returns every line with its pending flag set, lowest first.
func (e *EXTI) PendingLines() []Line {
	var result []Line
	for bank := 0; bank < NumBanks; bank++ {
		result = append(result, LinesOf(bank, Pending, e.Read(RegisterFor(Pending, bank)))...)
	}
	return result
}

// ClearPending clears the pending flags of lines.  Each bank gets a single
// store holding exactly the bits to clear; banks with nothing to clear are
// not written.  The result is false if any line has no pending flag (those
// are skipped).
func (e *EXTI) ClearPending(lines ...Line) bool {
	var masks [NumBanks]uint32
	ok := true
	for _, l := range lines {
		if !Supports(Pending, l) {
			ok = false
			continue
		}
		masks[l.Bank()] |= l.Bit()
	}
	for bank, mask := range masks {
		if mask != 0 {
			e.Write(RegisterFor(Pending, bank), mask)
		}
	}
	return ok
}

// ClearPendingMask clears the flags in mask of pending register id.  It
// refuses registers that are not pending registers.
func (e *EXTI) ClearPendingMask(id RegisterID, mask uint32) bool {
	if int(id) >= NumRegisters || Registers[id].Kind != Pending {
		return false
	}
	if mask&Registers[id].Valid != 0 {
		e.Write(id, mask)
	}
	return true
}

// Edge selects which transitions of a configurable line set its pending
// flag.
type Edge uint8

const (
	EdgeNone    Edge = 0
	EdgeRising  Edge = 1 << 0
	EdgeFalling Edge = 1 << 1
	EdgeBoth         = EdgeRising | EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// LineConfig is the complete configuration of one line.
type LineConfig struct {
	Interrupt bool //propagate to the NVIC
	Event     bool //propagate to the wakeup event output
	Edge      Edge
}

// Configure programs l as cfg.  The line is masked while its triggers are
// changed and any flag left pending from the old configuration is cleared
// before the line is unmasked again.
func (e *EXTI) Configure(l Line, cfg LineConfig) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLine, uint8(l))
	}
	if cfg.Edge > EdgeBoth {
		return fmt.Errorf("%w: %s", ErrInvalidEdge, cfg.Edge)
	}
	if cfg.Edge != EdgeNone && !l.Configurable() {
		return fmt.Errorf("%w: %s", ErrNotConfigurable, l)
	}
	e.MaskInterrupt(l)
	e.MaskEvent(l)
	if l.Configurable() {
		e.Set(RisingTrigger, l, cfg.Edge&EdgeRising != 0)
		e.Set(FallingTrigger, l, cfg.Edge&EdgeFalling != 0)
		e.ClearPending(l)
	}
	if cfg.Event {
		e.UnmaskEvent(l)
	}
	if cfg.Interrupt {
		e.UnmaskInterrupt(l)
	}
	return nil
}

// LineConfigOf reads back the configuration of l.
func (e *EXTI) LineConfigOf(l Line) LineConfig {
	cfg := LineConfig{
		Interrupt: e.InterruptUnmasked(l),
		Event:     e.EventUnmasked(l),
	}
	if e.RisingTriggerEnabled(l) {
		cfg.Edge |= EdgeRising
	}
	if e.FallingTriggerEnabled(l) {
		cfg.Edge |= EdgeFalling
	}
	return cfg
}
