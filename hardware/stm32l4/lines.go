package stm32l4

import "fmt"

// Line is an EXTI input, 0..40.  Lines 0-15 come from the GPIO ports
// (routed by SYSCFG), the rest from internal peripherals.
type Line uint8

// NumLines is the number of EXTI lines on the STM32L4.
const NumLines = 41

const (
	Line0 Line = iota
	Line1
	Line2
	Line3
	Line4
	Line5
	Line6
	Line7
	Line8
	Line9
	Line10
	Line11
	Line12
	Line13
	Line14
	Line15
	Line16
	Line17
	Line18
	Line19
	Line20
	Line21
	Line22
	Line23
	Line24
	Line25
	Line26
	Line27
	Line28
	Line29
	Line30
	Line31
	Line32
	Line33
	Line34
	Line35
	Line36
	Line37
	Line38
	Line39
	Line40
)

// internal sources
const (
	LinePVD         = Line16
	LineOTGFSWakeup = Line17 //direct
	LineRTCAlarm    = Line18
	LineRTCTamper   = Line19 //also timestamp and CSS_LSE
	LineRTCWakeup   = Line20
	LineCOMP1       = Line21
	LineCOMP2       = Line22
	LineI2C1        = Line23 //direct
	LineI2C2        = Line24 //direct
	LineI2C3        = Line25 //direct
	LineUSART1      = Line26 //direct
	LineUSART2      = Line27 //direct
	LineUSART3      = Line28 //direct
	LineUART4       = Line29 //direct
	LineUART5       = Line30 //direct
	LineLPUART1     = Line31 //direct
	LineLPTIM1      = Line32 //direct
	LineLPTIM2      = Line33 //direct
	LineSWPMI1      = Line34 //direct
	LinePVM1        = Line35
	LinePVM2        = Line36
	LinePVM3        = Line37
	LinePVM4        = Line38
	LineLCD         = Line39 //direct
	LineI2C4        = Line40 //direct
)

var lineSources = [NumLines]string{
	16: "PVD",
	17: "OTG_FS_WKUP",
	18: "RTC_ALARM",
	19: "RTC_TAMP_STAMP",
	20: "RTC_WKUP",
	21: "COMP1",
	22: "COMP2",
	23: "I2C1",
	24: "I2C2",
	25: "I2C3",
	26: "USART1",
	27: "USART2",
	28: "USART3",
	29: "UART4",
	30: "UART5",
	31: "LPUART1",
	32: "LPTIM1",
	33: "LPTIM2",
	34: "SWPMI1",
	35: "PVM1",
	36: "PVM2",
	37: "PVM3",
	38: "PVM4",
	39: "LCD",
	40: "I2C4",
}

// Valid reports whether the line exists.
func (l Line) Valid() bool {
	return l < NumLines
}

// Bank is 0 for lines 0..31 and 1 for lines 32..40.
func (l Line) Bank() int {
	return int(l) / 32
}

// Bit is the mask for the line within the registers of its bank.
func (l Line) Bit() uint32 {
	return 1 << (uint(l) % 32)
}

// Configurable lines have edge selection and a pending latch.  The others
// are direct lines: they follow their source and are only masked.
func (l Line) Configurable() bool {
	return Supports(RisingTrigger, l)
}

// Source names what drives the line.
func (l Line) Source() string {
	if !l.Valid() {
		return ""
	}
	if l < 16 {
		return "GPIO"
	}
	return lineSources[l]
}

func (l Line) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Line(%d)", uint8(l))
	}
	if l < 16 {
		return fmt.Sprintf("EXTI%d", uint8(l))
	}
	return fmt.Sprintf("EXTI%d(%s)", uint8(l), lineSources[l])
}

// Supports reports whether the register of role kind implements line.
func Supports(kind Kind, l Line) bool {
	if !l.Valid() || int(kind) >= numKinds {
		return false
	}
	return Registers[RegisterFor(kind, l.Bank())].Valid&l.Bit() != 0
}

// LinesOf expands the bits of a register value of bank into lines.  Reserved
// bits are ignored.
func LinesOf(bank int, kind Kind, value uint32) []Line {
	value &= Registers[RegisterFor(kind, bank)].Valid
	var result []Line
	for bit := uint(0); bit < 32 && value != 0; bit++ {
		if value&(1<<bit) != 0 {
			result = append(result, Line(bank*32+int(bit)))
			value &^= 1 << bit
		}
	}
	return result
}
