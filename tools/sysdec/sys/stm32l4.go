package sys

import "stm32exti/tools/sysdec"

//Sources:
//RM0351 Reference manual, STM32L4x5 and STM32L4x6
//RM0432 Reference manual, STM32L4+ Series
//PM0214 STM32 Cortex-M4 MCUs and MPUs programming manual

var STM32L4 = sysdec.DeviceDef{
	Vendor:      "STMicroelectronics",
	Name:        "STM32L4",
	Series:      "STM32L4",
	Description: "Ultra-low-power MCU with an ARM Cortex-M4 core and FPU",
	Cpu: sysdec.CPUDef{
		Name:                "CM4",
		Description:         "ARM Cortex-M4",
		Revision:            "r0p1",
		LittleEndian:        true,
		MMUPresent:          false,
		MPUPresent:          true,
		FPUPresent:          true,
		DSPPresent:          true,
		ICachePresent:       false, //the ART accelerator is not a core cache
		DCachePresent:       false,
		DeviceNumInterrupts: 82,
	},
	NumCores: 1,
	Peripheral: map[string]*sysdec.PeripheralDef{
		"EXTI": EXTI,
	},
	MMIOBindings: map[string]int{
		"EXTI": 0x4001_0000, //APB2
	},
}

// Devices are the declarations the sysdec command knows by name.
var Devices = map[string]*sysdec.DeviceDef{
	"stm32l4": &STM32L4,
}
