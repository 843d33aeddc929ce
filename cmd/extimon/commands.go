package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"stm32exti/hardware/stm32l4"
	"stm32exti/hardware/stm32l4/extisim"
)

var errQuit = errors.New("quit")

// bench is the simulated EXTI block and the API driving it.
type bench struct {
	dev  *extisim.Device
	exti *stm32l4.EXTI
}

func newBench() *bench {
	dev := extisim.New()
	return &bench{dev: dev, exti: stm32l4.NewEXTI(dev)}
}

type command struct {
	args int //minimum number of arguments
	help string
	run  func(b *bench, args []string) (string, error)
}

var commands = map[string]command{
	"unmask":  {1, "unmask N           let line N interrupt", lineOp(stm32l4.InterruptMask, true)},
	"mask":    {1, "mask N             stop line N interrupting", lineOp(stm32l4.InterruptMask, false)},
	"event":   {2, "event N on|off     event mask of line N", switchOp(stm32l4.EventMask)},
	"rise":    {2, "rise N on|off      rising edge trigger of line N", switchOp(stm32l4.RisingTrigger)},
	"fall":    {2, "fall N on|off      falling edge trigger of line N", switchOp(stm32l4.FallingTrigger)},
	"swi":     {1, "swi N              software interrupt on line N", lineOp(stm32l4.SoftwareInterrupt, true)},
	"config":  {3, "config N irq|evt|both|none rising|falling|both|none", (*bench).config},
	"edge":    {2, "edge N rise|fall   present an edge to line N", (*bench).edge},
	"clear":   {1, "clear N...         clear pending flags", (*bench).clear},
	"pending": {0, "pending            list pending lines", (*bench).pending},
	"read":    {1, "read REG           read a whole register", (*bench).read},
	"write":   {2, "write REG VALUE    write a whole register", (*bench).write},
	"dump":    {0, "dump               show every register", (*bench).dump},
	"reset":   {0, "reset              return to the reset state", (*bench).reset},
	"help":    {0, "help               this list", nil},
	"quit":    {0, "quit               leave", nil},
}

// execute runs one command line and returns what to print.
func (b *bench) execute(line string) (string, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", nil
	}
	name := strings.ToLower(words[0])
	switch name {
	case "help", "?":
		return usage(), nil
	case "quit", "exit":
		return "", errQuit
	}
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q, try help", words[0])
	}
	args := words[1:]
	if len(args) < cmd.args {
		return "", fmt.Errorf("usage: %s", cmd.help)
	}
	return cmd.run(b, args)
}

func usage() string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(commands[n].help + "\n")
	}
	return sb.String()
}

func parseLine(s string) (stm32l4.Line, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil || !stm32l4.Line(n).Valid() {
		return 0, fmt.Errorf("%w: %s", stm32l4.ErrInvalidLine, s)
	}
	return stm32l4.Line(n), nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func lineOp(kind stm32l4.Kind, on bool) func(*bench, []string) (string, error) {
	return func(b *bench, args []string) (string, error) {
		return b.set(kind, args[0], on)
	}
}

func switchOp(kind stm32l4.Kind) func(*bench, []string) (string, error) {
	return func(b *bench, args []string) (string, error) {
		on, err := parseSwitch(args[1])
		if err != nil {
			return "", err
		}
		return b.set(kind, args[0], on)
	}
}

func (b *bench) set(kind stm32l4.Kind, arg string, on bool) (string, error) {
	l, err := parseLine(arg)
	if err != nil {
		return "", err
	}
	if !b.exti.Set(kind, l, on) {
		return "", fmt.Errorf("%s has no %s bit", l, kind)
	}
	id := stm32l4.RegisterFor(kind, l.Bank())
	return fmt.Sprintf("%s = 0x%08x", id, b.exti.Read(id)), nil
}

func (b *bench) config(args []string) (string, error) {
	l, err := parseLine(args[0])
	if err != nil {
		return "", err
	}
	var cfg stm32l4.LineConfig
	switch strings.ToLower(args[1]) {
	case "irq":
		cfg.Interrupt = true
	case "evt":
		cfg.Event = true
	case "both":
		cfg.Interrupt, cfg.Event = true, true
	case "none":
	default:
		return "", fmt.Errorf("expected irq, evt, both or none, got %q", args[1])
	}
	switch strings.ToLower(args[2]) {
	case "rising":
		cfg.Edge = stm32l4.EdgeRising
	case "falling":
		cfg.Edge = stm32l4.EdgeFalling
	case "both":
		cfg.Edge = stm32l4.EdgeBoth
	case "none":
	default:
		return "", fmt.Errorf("expected rising, falling, both or none, got %q", args[2])
	}
	if err := b.exti.Configure(l, cfg); err != nil {
		return "", err
	}
	got := b.exti.LineConfigOf(l)
	return fmt.Sprintf("%s: interrupt=%v event=%v edge=%s", l, got.Interrupt, got.Event, got.Edge), nil
}

func (b *bench) edge(args []string) (string, error) {
	l, err := parseLine(args[0])
	if err != nil {
		return "", err
	}
	var rising bool
	switch strings.ToLower(args[1]) {
	case "rise", "rising", "up":
		rising = true
	case "fall", "falling", "down":
	default:
		return "", fmt.Errorf("expected rise or fall, got %q", args[1])
	}
	o := b.dev.Edge(l, rising)
	return fmt.Sprintf("%s: pending=%v interrupt=%v event=%v", l, o.Pending, o.Interrupt, o.Event), nil
}

func (b *bench) clear(args []string) (string, error) {
	lines := make([]stm32l4.Line, 0, len(args))
	for _, a := range args {
		l, err := parseLine(a)
		if err != nil {
			return "", err
		}
		lines = append(lines, l)
	}
	if !b.exti.ClearPending(lines...) {
		return "", errors.New("some lines have no pending flag")
	}
	return b.pending(nil)
}

func (b *bench) pending(_ []string) (string, error) {
	lines := b.exti.PendingLines()
	if len(lines) == 0 {
		return "nothing pending", nil
	}
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.String()
	}
	return "pending: " + strings.Join(names, " "), nil
}

func parseRegister(s string) (stm32l4.RegisterID, error) {
	id, ok := stm32l4.LookupRegister(s)
	if !ok {
		return 0, fmt.Errorf("no register %q", s)
	}
	return id, nil
}

func (b *bench) read(args []string) (string, error) {
	id, err := parseRegister(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = 0x%08x", id, b.exti.Read(id)), nil
}

func (b *bench) write(args []string) (string, error) {
	id, err := parseRegister(args[0])
	if err != nil {
		return "", err
	}
	v, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return "", fmt.Errorf("bad value %q: %w", args[1], err)
	}
	b.exti.Write(id, uint32(v))
	return fmt.Sprintf("%s = 0x%08x", id, b.exti.Read(id)), nil
}

func (b *bench) dump(_ []string) (string, error) {
	return strings.TrimRight(b.exti.Snapshot().String(), "\n"), nil
}

func (b *bench) reset(_ []string) (string, error) {
	b.dev.Reset()
	return "reset", nil
}
