package stm32l4

import (
	"fmt"
	"strings"
)

// State is a copy of every register, indexed by RegisterID.
type State [NumRegisters]uint32

// Snapshot reads all twelve registers.  The reads are not atomic as a
// group; pending flags may be latched between them.
func (e *EXTI) Snapshot() State {
	var s State
	for i := range s {
		s[i] = e.Read(RegisterID(i))
	}
	return s
}

// ReservedViolations lists the registers with reserved bits set.
func (s State) ReservedViolations() []RegisterID {
	var result []RegisterID
	for i, v := range s {
		if v&Registers[i].Reserved() != 0 {
			result = append(result, RegisterID(i))
		}
	}
	return result
}

func (s State) String() string {
	var b strings.Builder
	for i, v := range s {
		r := Registers[i]
		fmt.Fprintf(&b, "%-6s 0x%02x %-3s 0x%08x", r.Name, r.Offset, r.Access, v)
		if bad := v & r.Reserved(); bad != 0 {
			fmt.Fprintf(&b, " reserved bits set: 0x%08x", bad)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
