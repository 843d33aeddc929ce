// +build stm32l4

package stm32l4

import "unsafe"

// EXTIRegisters is the chip's EXTI block.  Only firmware builds have it;
// everything else hands a Port to NewEXTI.
var EXTIRegisters = Overlay(unsafe.Pointer(uintptr(EXTIBase)))
