package sysdec

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"
)

func testDevice(regs map[string]*RegisterDef) DeviceDef {
	return DeviceDef{
		Name:        "TestChip",
		Description: "chip for tests",
		Peripheral: map[string]*PeripheralDef{
			"TIM": {
				Description:  "timer",
				AddressBlock: AddressBlockDef{BaseAddress: 0x100, Size: 0x10},
				Register:     regs,
			},
			"UNBOUND": {
				AddressBlock: AddressBlockDef{Size: 0x4},
			},
		},
		MMIOBindings: map[string]int{"TIM": 0x4000_0000},
	}
}

func testOptions() *UserOptions {
	return &UserOptions{Pkg: "chip", Import: "stm32exti/hardware/volatile", InputFilename: "test"}
}

func generate(t *testing.T, d DeviceDef) *ast.File {
	t.Helper()
	var out bytes.Buffer
	if err := GenerateDeviceDecls(d, testOptions(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", out.Bytes(), parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out.String())
	}
	return file
}

// structFields returns the field names of the named struct type.
func structFields(file *ast.File, name string) []string {
	var result []string
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok || ts.Name.Name != name {
			return true
		}
		for _, f := range ts.Type.(*ast.StructType).Fields.List {
			for _, id := range f.Names {
				result = append(result, id.Name)
			}
		}
		return false
	})
	return result
}

// constValues returns every constant declared with a literal integer.
func constValues(file *ast.File) map[string]uint64 {
	result := map[string]uint64{}
	ast.Inspect(file, func(n ast.Node) bool {
		vs, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, id := range vs.Names {
			if i >= len(vs.Values) {
				break
			}
			lit, ok := vs.Values[i].(*ast.BasicLit)
			if !ok || lit.Kind != token.INT {
				continue
			}
			if v, err := strconv.ParseUint(lit.Value, 0, 64); err == nil {
				result[id.Name] = v
			}
		}
		return true
	})
	return result
}

func timerRegisters() map[string]*RegisterDef {
	return map[string]*RegisterDef{
		"CR": {
			AddressOffset: 0x0,
			Access:        Access("rw"),
			ResetValue:    0x10,
			Field: map[string]*FieldDef{
				"EN": {Description: "enable", BitRange: Bit(0)},
				"DIR": {
					Description: "direction",
					BitRange:    BitRange(5, 4),
					EnumeratedValue: map[string]*EnumeratedValueDef{
						"Up":   {Value: 0, Description: "counting up"},
						"Down": {Value: 1},
					},
				},
			},
		},
		"SR": {
			AddressOffset: 0x8,
			Access:        Access("w1c"),
			Field: map[string]*FieldDef{
				"UIF": {BitRange: Bit(0)},
				"CCF": {BitRange: Bit(3), Access: Access("r")},
			},
		},
	}
}

func TestGenerateFillsGaps(t *testing.T) {
	file := generate(t, testDevice(timerRegisters()))
	if file.Name.Name != "chip" {
		t.Errorf("expected package chip but got %s", file.Name.Name)
	}
	fields := structFields(file, "TIMRegisterMap")
	expected := []string{"CR", "reserved000", "SR", "reserved001"}
	if strings.Join(fields, ",") != strings.Join(expected, ",") {
		t.Errorf("expected fields %v but got %v", expected, fields)
	}
	if fields := structFields(file, "UNBOUNDRegisterMap"); len(fields) != 0 {
		t.Errorf("peripherals without a binding should be skipped")
	}

	consts := constValues(file)
	checkConst(t, consts, "TIMBase", 0x4000_0100)
	checkConst(t, consts, "TIM_CR_DIR_Pos", 4)
	checkConst(t, consts, "TIM_CR_DIR_Msk", 0x30)
	checkConst(t, consts, "TIM_CR_DIR_Down", 1)
	checkConst(t, consts, "TIM_CR_EN_Msk", 0x1)
	checkConst(t, consts, "TIM_CRValid", 0x31)
	checkConst(t, consts, "TIM_SRValid", 0x9)
	checkConst(t, consts, "TIM_CRReset", 0x10)
	if _, ok := consts["TIM_SRReset"]; ok {
		t.Errorf("a register that resets to zero needs no reset constant")
	}
}

func TestGenerateFieldsOnly(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions()
	opts.FieldsOnly = true
	opts.Import = ""
	if err := GenerateDeviceDecls(testDevice(timerRegisters()), opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), "fields.go", out.Bytes(), parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out.String())
	}
	if len(file.Imports) != 0 {
		t.Errorf("constants need no imports, got %d", len(file.Imports))
	}
	if file.Doc != nil {
		t.Errorf("the device comment should not become the package comment")
	}
	if fields := structFields(file, "TIMRegisterMap"); len(fields) != 0 {
		t.Errorf("expected no register map but got %v", fields)
	}
	consts := constValues(file)
	if _, ok := consts["TIMBase"]; ok {
		t.Errorf("expected no base address")
	}
	checkConst(t, consts, "TIM_CR_DIR_Msk", 0x30)
	checkConst(t, consts, "TIM_SRValid", 0x9)
	checkConst(t, consts, "TIM_CR_DIR_Up", 0)
	if !strings.Contains(out.String(), "//counting up") {
		t.Errorf("expected the enum description as a comment:\n%s", out.String())
	}
	for _, decl := range file.Decls {
		if g, ok := decl.(*ast.GenDecl); ok && g.Tok == token.VAR {
			t.Errorf("expected no variables")
		}
	}
}

func TestDeviceDoc(t *testing.T) {
	d := testDevice(timerRegisters())
	d.Vendor = "Acme"
	d.Series = "AC1"
	d.NumCores = 2
	d.Cpu = CPUDef{
		Name:                "CM0",
		Description:         "ARM Cortex-M0+",
		Revision:            "r0p1",
		LittleEndian:        true,
		MPUPresent:          true,
		DCachePresent:       true,
		DeviceNumInterrupts: 32,
	}
	file := generate(t, d)
	expected := "TestChip: chip for tests\n\n" +
		"Vendor: Acme, AC1 series.\n" +
		"Core: 2 x ARM Cortex-M0+ (CM0) r0p1, little endian, 32 interrupts.\n" +
		"Units: MPU, D-cache.\n"
	if got := file.Doc.Text(); got != expected {
		t.Errorf("expected package comment\n%q\nbut got\n%q", expected, got)
	}

	//without vendor or core only the description is left
	if got := generate(t, testDevice(timerRegisters())).Doc.Text(); got != "TestChip: chip for tests\n" {
		t.Errorf("unexpected package comment %q", got)
	}
}

func checkConst(t *testing.T, consts map[string]uint64, name string, expected uint64) {
	t.Helper()
	v, ok := consts[name]
	if !ok {
		t.Errorf("constant %s was not generated", name)
		return
	}
	if v != expected {
		t.Errorf("%s: expected 0x%x but got 0x%x", name, expected, v)
	}
}

func TestFieldAccessInherited(t *testing.T) {
	d := testDevice(timerRegisters())
	generate(t, d)
	sr := d.Peripheral["TIM"].Register["SR"]
	if !sr.Field["UIF"].Access.OneToClear() || !sr.Field["UIF"].Access.CanWrite() {
		t.Errorf("UIF should inherit w1c from SR")
	}
	if sr.Field["CCF"].Access.CanWrite() {
		t.Errorf("CCF is declared read only")
	}
	if sr.Field["UIF"].Name != "UIF" {
		t.Errorf("field should be named from its map key")
	}
}

func TestGenerateBuildTags(t *testing.T) {
	var out bytes.Buffer
	opts := testOptions()
	opts.OutTags = "stm32l4"
	if err := GenerateDeviceDecls(testDevice(timerRegisters()), opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "// +build stm32l4\n\n") {
		t.Errorf("expected build constraint followed by a blank line:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), "// Code generated by sysdec") {
		t.Errorf("expected generated code header")
	}
}

func TestGenerateErrors(t *testing.T) {
	cases := map[string]func(map[string]*RegisterDef){
		"overlap": func(r map[string]*RegisterDef) {
			r["DUP"] = &RegisterDef{AddressOffset: 0x8, Access: Access("r")}
		},
		"unaligned": func(r map[string]*RegisterDef) {
			r["ODD"] = &RegisterDef{AddressOffset: 0x6, Access: Access("r")}
		},
		"past the block": func(r map[string]*RegisterDef) {
			r["FAR"] = &RegisterDef{AddressOffset: 0x10, Access: Access("r")}
		},
		"16 bit": func(r map[string]*RegisterDef) {
			r["SR"].Size = 16
		},
		"field too wide": func(r map[string]*RegisterDef) {
			r["CR"].Field["BIG"] = &FieldDef{BitRange: BitRange(40, 32)}
		},
		"field overlap": func(r map[string]*RegisterDef) {
			r["CR"].Field["EN2"] = &FieldDef{BitRange: Bit(0)}
		},
		"no access": func(r map[string]*RegisterDef) {
			r["CR"].Access = AccessDef{}
		},
	}
	for name, mutate := range cases {
		regs := timerRegisters()
		mutate(regs)
		var out bytes.Buffer
		if err := GenerateDeviceDecls(testDevice(regs), testOptions(), &out); err == nil {
			t.Errorf("%s: expected an error", name)
		}
		if out.Len() != 0 {
			t.Errorf("%s: nothing should be written on error", name)
		}
	}
}

func TestAccess(t *testing.T) {
	for _, s := range []string{"r", "w", "rw", "w1c", "w1t"} {
		if got := Access(s).String(); got != s {
			t.Errorf("expected %s to round trip but got %s", s, got)
		}
	}
	if Access("").IsSet() {
		t.Errorf("empty access should not be set")
	}
	if !Access(" W1T ").OneToTrigger() {
		t.Errorf("expected w1t to be one-to-trigger")
	}
}

func TestBitRange(t *testing.T) {
	b := BitRange(22, 18)
	if b.Width() != 5 || b.Mask() != 0x007C_0000 {
		t.Errorf("unexpected width %d or mask 0x%x", b.Width(), b.Mask())
	}
	full := BitRange(31, 0)
	if full.Mask() != 0xFFFF_FFFF {
		t.Errorf("expected full mask but got 0x%x", full.Mask())
	}
	r := &RegisterDef{Field: map[string]*FieldDef{
		"A": {BitRange: Bit(0)}, "B": {BitRange: BitRange(6, 3)},
	}}
	if r.ValidMask() != 0x79 {
		t.Errorf("expected valid mask 0x79 but got 0x%x", r.ValidMask())
	}
}

func TestComment(t *testing.T) {
	got := comment("first\n\n\tsecond  \n")
	if got != "// first\n//\n// second" {
		t.Errorf("unexpected comment %q", got)
	}
	if comment("  ") != "" {
		t.Errorf("blank text should make no comment")
	}
}
