package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"stm32exti/hardware/stm32l4"
)

func run(t *testing.T, b *bench, line string) string {
	t.Helper()
	result, err := b.execute(line)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", line, err)
	}
	return result
}

func TestUnmaskLine5(t *testing.T) {
	b := newBench()
	run(t, b, "write imr1 0")
	if got := run(t, b, "unmask 5"); got != "IMR1 = 0x00000020" {
		t.Errorf("unexpected result %q", got)
	}
	run(t, b, "write rtsr1 0")
	if got := run(t, b, "rise 22 on"); got != "RTSR1 = 0x00400000" {
		t.Errorf("unexpected result %q", got)
	}
}

func TestEdgeAndClear(t *testing.T) {
	b := newBench()
	run(t, b, "config 3 irq rising")
	run(t, b, "config 0x24 both both") //PVM2
	if got := run(t, b, "edge 3 rise"); got != "EXTI3: pending=true interrupt=true event=false" {
		t.Errorf("unexpected edge result %q", got)
	}
	run(t, b, "edge 36 fall")
	if got := run(t, b, "pending"); got != "pending: EXTI3 EXTI36(PVM2)" {
		t.Errorf("unexpected pending list %q", got)
	}
	if got := run(t, b, "clear 3"); got != "pending: EXTI36(PVM2)" {
		t.Errorf("unexpected result after clear %q", got)
	}
	run(t, b, "clear 36")
	if got := run(t, b, "pending"); got != "nothing pending" {
		t.Errorf("expected nothing pending, got %q", got)
	}
}

func TestSoftwareInterruptCommand(t *testing.T) {
	b := newBench()
	run(t, b, "swi 18")
	if !b.exti.Pending(stm32l4.LineRTCAlarm) {
		t.Errorf("expected software interrupt to latch line 18")
	}
	if got := run(t, b, "read SWIER1"); got != "SWIER1 = 0x00040000" {
		t.Errorf("unexpected SWIER1 %q", got)
	}
}

func TestCommandErrors(t *testing.T) {
	b := newBench()
	for _, line := range []string{
		"frobnicate",
		"unmask",
		"unmask 41",
		"rise 17 on",
		"event 3 maybe",
		"config 23 irq rising",
		"edge 3 sideways",
		"read CR1",
		"write imr1 lots",
		"clear 17",
	} {
		if _, err := b.execute(line); err == nil {
			t.Errorf("%q: expected an error", line)
		}
	}
	if _, err := b.execute("unmask 99"); !errors.Is(err, stm32l4.ErrInvalidLine) {
		t.Errorf("expected ErrInvalidLine but got %v", err)
	}
	if _, err := b.execute("quit"); err != errQuit {
		t.Errorf("expected quit")
	}
}

func TestDumpAndHelp(t *testing.T) {
	b := newBench()
	dump := run(t, b, "dump")
	if strings.Count(dump, "\n") != stm32l4.NumRegisters-1 {
		t.Errorf("expected one line per register:\n%s", dump)
	}
	if !strings.Contains(dump, "0xff820000") {
		t.Errorf("expected the IMR1 reset value in the dump:\n%s", dump)
	}
	help := run(t, b, "help")
	for name := range commands {
		if !strings.Contains(help, name) {
			t.Errorf("help does not mention %s", name)
		}
	}
}

func TestRunScript(t *testing.T) {
	in := strings.NewReader("config 7 irq falling\nedge 7 fall\n\npending\nquit\nunmask 1\n")
	var out bytes.Buffer
	if err := runScript(newBench(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "pending: EXTI7") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "IMR1") {
		t.Errorf("commands after quit should not run")
	}

	err := runScript(newBench(), strings.NewReader("dump\nunmask 50\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected an error on line 2 but got %v", err)
	}
}
