package stm32l4

import (
	"fmt"
	"strings"
)

// RegisterID names one of the twelve EXTI registers.  The order matches
// the memory layout: the six bank 1 registers, then the six of bank 2.
type RegisterID uint8

const (
	IMR1 RegisterID = iota
	EMR1
	RTSR1
	FTSR1
	SWIER1
	PR1
	IMR2
	EMR2
	RTSR2
	FTSR2
	SWIER2
	PR2
)

// NumRegisters is the number of implemented registers (the reserved
// words at 0x18 and 0x1C are not counted).
const NumRegisters = int(PR2) + 1

// NumBanks is the number of register banks.
const NumBanks = 2

// Valid bits of each register; the rest are reserved and must be kept at
// their reset value of zero.  They come from the field declarations in
// exti_fields.go.
const (
	IMR1Valid   = EXTI_IMR1Valid //0xFFFF_FFFF
	EMR1Valid   = EXTI_EMR1Valid
	RTSR1Valid  = EXTI_RTSR1Valid //0x007D_FFFF, lines 0-16, 18-22
	FTSR1Valid  = EXTI_FTSR1Valid
	SWIER1Valid = EXTI_SWIER1Valid
	PR1Valid    = EXTI_PR1Valid
	IMR2Valid   = EXTI_IMR2Valid //0x0000_01FF, lines 32-40
	EMR2Valid   = EXTI_EMR2Valid
	RTSR2Valid  = EXTI_RTSR2Valid //0x0000_0078, lines 35-38
	FTSR2Valid  = EXTI_FTSR2Valid
	SWIER2Valid = EXTI_SWIER2Valid
	PR2Valid    = EXTI_PR2Valid
)

// Access is the write behavior of a register.
type Access uint8

const (
	// ReadWrite registers hold configuration; the value written is the
	// value read back.
	ReadWrite Access = iota
	// WriteOneToTrigger registers (SWIER) generate an event for each
	// bit written as 1.  Writing 0 has no effect.
	WriteOneToTrigger
	// WriteOneToClear registers (PR) are set by hardware and clear the
	// bits written as 1.  Writing 0 has no effect.
	WriteOneToClear
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "rw"
	case WriteOneToTrigger:
		return "w1t"
	case WriteOneToClear:
		return "w1c"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Kind is the role of a register, independent of its bank.
type Kind uint8

const (
	InterruptMask Kind = iota
	EventMask
	RisingTrigger
	FallingTrigger
	SoftwareInterrupt
	Pending
)

const numKinds = int(Pending) + 1

var kindNames = [numKinds]string{
	"interrupt mask", "event mask", "rising trigger", "falling trigger",
	"software interrupt", "pending",
}

func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// RegisterDef describes one register.
type RegisterDef struct {
	Name        string
	Description string
	Offset      uintptr
	Valid       uint32
	Access      Access
	Kind        Kind
	Bank        int
}

// Reserved returns the bits of the register that are not implemented.
func (r RegisterDef) Reserved() uint32 {
	return ^r.Valid
}

// Registers is indexed by RegisterID.
var Registers = [NumRegisters]RegisterDef{
	{"IMR1", "Interrupt mask register 1", 0x00, IMR1Valid, ReadWrite, InterruptMask, 0},
	{"EMR1", "Event mask register 1", 0x04, EMR1Valid, ReadWrite, EventMask, 0},
	{"RTSR1", "Rising trigger selection register 1", 0x08, RTSR1Valid, ReadWrite, RisingTrigger, 0},
	{"FTSR1", "Falling trigger selection register 1", 0x0C, FTSR1Valid, ReadWrite, FallingTrigger, 0},
	{"SWIER1", "Software interrupt event register 1", 0x10, SWIER1Valid, WriteOneToTrigger, SoftwareInterrupt, 0},
	{"PR1", "Pending register 1", 0x14, PR1Valid, WriteOneToClear, Pending, 0},
	{"IMR2", "Interrupt mask register 2", 0x20, IMR2Valid, ReadWrite, InterruptMask, 1},
	{"EMR2", "Event mask register 2", 0x24, EMR2Valid, ReadWrite, EventMask, 1},
	{"RTSR2", "Rising trigger selection register 2", 0x28, RTSR2Valid, ReadWrite, RisingTrigger, 1},
	{"FTSR2", "Falling trigger selection register 2", 0x2C, FTSR2Valid, ReadWrite, FallingTrigger, 1},
	{"SWIER2", "Software interrupt event register 2", 0x30, SWIER2Valid, WriteOneToTrigger, SoftwareInterrupt, 1},
	{"PR2", "Pending register 2", 0x34, PR2Valid, WriteOneToClear, Pending, 1},
}

func (id RegisterID) String() string {
	if int(id) < NumRegisters {
		return Registers[id].Name
	}
	return fmt.Sprintf("RegisterID(%d)", uint8(id))
}

// Def returns the description of the register.
func (id RegisterID) Def() RegisterDef {
	return Registers[id]
}

// RegisterFor returns the register playing role kind in bank (0 or 1).
func RegisterFor(kind Kind, bank int) RegisterID {
	return RegisterID(bank*numKinds + int(kind))
}

// LookupRegister finds a register by its name, ignoring case.
func LookupRegister(name string) (RegisterID, bool) {
	for i, r := range Registers {
		if strings.EqualFold(r.Name, name) {
			return RegisterID(i), true
		}
	}
	return 0, false
}
