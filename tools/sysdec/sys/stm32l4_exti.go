package sys

import (
	"fmt"

	"stm32exti/tools/sysdec"
)

var EXTI = &sysdec.PeripheralDef{
	Description: `Extended interrupt and event controller.

Each line can raise an interrupt towards the NVIC and an event towards the
wakeup logic, independently masked.  Configurable lines (0-16, 18-22, 35-38)
have rising and falling edge selection, a software trigger and a pending
flag that hardware sets and software clears by writing 1.  Direct lines
follow their source peripheral and have no pending flag here.

ProTip: never clear a pending flag by writing back a value read from the
pending register.  Write only the bits you mean to clear.`,
	AddressBlock: sysdec.AddressBlockDef{
		BaseAddress: 0x400,
		Size:        0x38,
	},
	Register: map[string]*sysdec.RegisterDef{
		"IMR1": {
			Description:   `Interrupt mask register 1: 1 lets line x request an interrupt.`,
			AddressOffset: 0x00,
			Access:        sysdec.Access("rw"),
			ResetValue:    0xFF82_0000,
			Field:         lineFields("IM", "Interrupt mask on line %d", 0, span(0, 31)),
		},
		"EMR1": {
			Description:   `Event mask register 1: 1 lets line x generate an event.`,
			AddressOffset: 0x04,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("EM", "Event mask on line %d", 0, span(0, 31)),
		},
		"RTSR1": {
			Description:   `Rising trigger selection register 1.`,
			AddressOffset: 0x08,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("RT", "Rising trigger event configuration of line %d", 0, bank1Configurable),
		},
		"FTSR1": {
			Description:   `Falling trigger selection register 1.`,
			AddressOffset: 0x0C,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("FT", "Falling trigger event configuration of line %d", 0, bank1Configurable),
		},
		"SWIER1": {
			Description: `Software interrupt event register 1: writing 1 sets the
pending flag of the line.  The bit reads back as 1 until the flag is cleared.`,
			AddressOffset: 0x10,
			Access:        sysdec.Access("w1t"),
			Field:         lineFields("SWI", "Software interrupt on line %d", 0, bank1Configurable),
		},
		"PR1": {
			Description:   `Pending register 1: set by hardware, cleared by writing 1.`,
			AddressOffset: 0x14,
			Access:        sysdec.Access("w1c"),
			Field:         lineFields("PIF", "Pending interrupt flag on line %d", 0, bank1Configurable),
		},
		"IMR2": {
			Description:   `Interrupt mask register 2.`,
			AddressOffset: 0x20,
			Access:        sysdec.Access("rw"),
			ResetValue:    0x0000_0087,
			Field:         lineFields("IM", "Interrupt mask on line %d", 32, span(32, 40)),
		},
		"EMR2": {
			Description:   `Event mask register 2.`,
			AddressOffset: 0x24,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("EM", "Event mask on line %d", 32, span(32, 40)),
		},
		"RTSR2": {
			Description:   `Rising trigger selection register 2.`,
			AddressOffset: 0x28,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("RT", "Rising trigger event configuration of line %d", 32, bank2Configurable),
		},
		"FTSR2": {
			Description:   `Falling trigger selection register 2.`,
			AddressOffset: 0x2C,
			Access:        sysdec.Access("rw"),
			Field:         lineFields("FT", "Falling trigger event configuration of line %d", 32, bank2Configurable),
		},
		"SWIER2": {
			Description:   `Software interrupt event register 2.`,
			AddressOffset: 0x30,
			Access:        sysdec.Access("w1t"),
			Field:         lineFields("SWI", "Software interrupt on line %d", 32, bank2Configurable),
		},
		"PR2": {
			Description:   `Pending register 2.`,
			AddressOffset: 0x34,
			Access:        sysdec.Access("w1c"),
			Field:         lineFields("PIF", "Pending interrupt flag on line %d", 32, bank2Configurable),
		},
	},
}

// line 17 (USB OTG FS wakeup) is a direct line
var bank1Configurable = append(span(0, 16), span(18, 22)...)
var bank2Configurable = span(35, 38)

func span(first, last int) []int {
	result := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		result = append(result, i)
	}
	return result
}

// lineFields makes a one bit field per line; base is the first line of
// the bank.
func lineFields(prefix, description string, base int, lines []int) map[string]*sysdec.FieldDef {
	result := make(map[string]*sysdec.FieldDef, len(lines))
	for _, l := range lines {
		result[fmt.Sprintf("%s%d", prefix, l)] = &sysdec.FieldDef{
			Description: fmt.Sprintf(description, l),
			BitRange:    sysdec.Bit(l - base),
		}
	}
	return result
}
