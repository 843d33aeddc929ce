package sysdec

import (
	"fmt"
	"strings"
)

type AccessDef struct {
	read         bool
	write        bool
	oneToClear   bool //a written 1 clears the bit, 0 does nothing
	oneToTrigger bool //a written 1 starts an action, 0 does nothing
	isSet        bool //did they explictly set the field
}

func (a AccessDef) CanRead() bool {
	return a.read
}
func (a AccessDef) CanWrite() bool {
	return a.write
}
func (a AccessDef) OneToClear() bool {
	return a.oneToClear
}
func (a AccessDef) OneToTrigger() bool {
	return a.oneToTrigger
}
func (a AccessDef) IsSet() bool {
	return a.isSet
}

// Access parses r, w, rw, w1c (write one to clear) or w1t (write one to
// trigger).  The w1 forms are readable.
func Access(s string) AccessDef {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	var a AccessDef
	switch s {
	case "": //do nothing
	case "r":
		a.read = true
		a.isSet = true
	case "w":
		a.write = true
		a.isSet = true
	case "rw":
		a.write = true
		a.read = true
		a.isSet = true
	case "w1c":
		a.write = true
		a.read = true
		a.oneToClear = true
		a.isSet = true
	case "w1t":
		a.write = true
		a.read = true
		a.oneToTrigger = true
		a.isSet = true
	default:
		panic("unable to understand Access value:" + s)
	}
	return a
}

func (a AccessDef) String() string {
	switch {
	case a.oneToClear:
		return "w1c"
	case a.oneToTrigger:
		return "w1t"
	case a.read && a.write:
		return "rw"
	case a.write:
		return "w"
	case a.read:
		return "r"
	}
	return ""
}

type BitRangeDef struct {
	Lsb int
	Msb int
}

func (b *BitRangeDef) String() string {
	return fmt.Sprintf("[%d:%d]", b.Msb, b.Lsb)
}
func (b *BitRangeDef) Width() int {
	return (b.Msb - b.Lsb) + 1
}

// Mask is the field in place.  Bits above 31 are dropped.
func (b *BitRangeDef) Mask() uint32 {
	return uint32(((uint64(1) << uint(b.Width())) - 1) << uint(b.Lsb))
}

func BitRange(Msb int, Lsb int) BitRangeDef {
	if Msb > 63 || Lsb > 63 || Msb < 0 || Lsb < 0 {
		panic("BitRange value for Msb/Lsb out of range")
	}
	if Msb < Lsb {
		panic("BitRange Msb < Lsb")
	}
	return BitRangeDef{Msb: Msb, Lsb: Lsb}
}

// Bit is BitRange(n, n).
func Bit(n int) BitRangeDef {
	return BitRange(n, n)
}
