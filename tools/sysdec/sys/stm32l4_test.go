package sys

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/ioutil"
	"strconv"
	"testing"

	"stm32exti/hardware/stm32l4"
	"stm32exti/tools/sysdec"
)

// The declaration and the hand-kept register catalogue must agree.
func TestEXTIMatchesCatalogue(t *testing.T) {
	for _, r := range stm32l4.Registers {
		decl, ok := EXTI.Register[r.Name]
		if !ok {
			t.Errorf("%s is not declared", r.Name)
			continue
		}
		if uintptr(decl.AddressOffset) != r.Offset {
			t.Errorf("%s: declared at 0x%02x, catalogue says 0x%02x", r.Name, decl.AddressOffset, r.Offset)
		}
		if got := decl.ValidMask(); got != r.Valid {
			t.Errorf("%s: declared fields cover 0x%08x, catalogue says 0x%08x", r.Name, got, r.Valid)
		}
		if decl.Access.String() != r.Access.String() {
			t.Errorf("%s: declared access %s, catalogue says %s", r.Name, decl.Access, r.Access)
		}
	}
	if len(EXTI.Register) != stm32l4.NumRegisters {
		t.Errorf("expected %d registers but %d are declared", stm32l4.NumRegisters, len(EXTI.Register))
	}
	base := STM32L4.MMIOBindings["EXTI"] + EXTI.AddressBlock.BaseAddress
	if base != stm32l4.EXTIBase {
		t.Errorf("expected EXTI at 0x%08x but it is declared at 0x%08x", stm32l4.EXTIBase, base)
	}
}

func TestGenerateSTM32L4(t *testing.T) {
	var out bytes.Buffer
	opts := &sysdec.UserOptions{
		Pkg:           "stm32l4",
		Import:        "stm32exti/hardware/volatile",
		InputFilename: "stm32l4",
		OutTags:       "stm32l4",
	}
	if err := sysdec.GenerateDeviceDecls(*Devices["stm32l4"], opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), "exti.go", out.Bytes(), 0)
	if err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}

	var fields []string
	consts := map[string]uint64{}
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.TypeSpec:
			if n.Name.Name == "EXTIRegisterMap" {
				for _, f := range n.Type.(*ast.StructType).Fields.List {
					fields = append(fields, f.Names[0].Name)
				}
			}
		case *ast.ValueSpec:
			if len(n.Values) == 1 {
				if lit, ok := n.Values[0].(*ast.BasicLit); ok && lit.Kind == token.INT {
					v, _ := strconv.ParseUint(lit.Value, 0, 64)
					consts[n.Names[0].Name] = v
				}
			}
		}
		return true
	})

	//12 registers plus the two reserved words at 0x18 and 0x1C
	if len(fields) != 14 {
		t.Fatalf("expected 14 words in the register map but got %v", fields)
	}
	if fields[6] != "reserved000" || fields[7] != "reserved001" {
		t.Errorf("expected the reserved gap at words 6 and 7, got %v", fields)
	}
	if consts["EXTIBase"] != stm32l4.EXTIBase {
		t.Errorf("expected EXTIBase 0x%08x but got 0x%08x", stm32l4.EXTIBase, consts["EXTIBase"])
	}
	for _, r := range stm32l4.Registers {
		name := fmt.Sprintf("EXTI_%sValid", r.Name)
		if v, ok := consts[name]; !ok || v != uint64(r.Valid) {
			t.Errorf("%s: expected 0x%08x but got 0x%08x", name, r.Valid, v)
		}
	}
	if consts["EXTI_RTSR1_RT22_Msk"] != 0x0040_0000 {
		t.Errorf("expected RT22 at bit 22")
	}
	if consts["EXTI_PR2_PIF35_Pos"] != 3 {
		t.Errorf("expected PIF35 at bit 3 of PR2")
	}
	if _, ok := consts["EXTI_RTSR1_RT17_Msk"]; ok {
		t.Errorf("line 17 has no trigger selection")
	}
}

// constDecls maps each constant in src to its value: the number for a
// literal, the name for a reference to another constant.
func constDecls(t *testing.T, name string, src []byte) map[string]string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	if err != nil {
		t.Fatalf("%s does not parse: %v", name, err)
	}
	result := map[string]string{}
	for _, decl := range file.Decls {
		g, ok := decl.(*ast.GenDecl)
		if !ok || g.Tok != token.CONST {
			t.Errorf("%s: unexpected declaration at %v", name, decl.Pos())
			continue
		}
		for _, spec := range g.Specs {
			vs := spec.(*ast.ValueSpec)
			switch v := vs.Values[0].(type) {
			case *ast.BasicLit:
				n, _ := strconv.ParseUint(v.Value, 0, 64)
				result[vs.Names[0].Name] = fmt.Sprintf("0x%x", n)
			case *ast.Ident:
				result[vs.Names[0].Name] = v.Name
			}
		}
	}
	return result
}

// The committed field constants must be what the declaration generates.
func TestFieldsFileUpToDate(t *testing.T) {
	var out bytes.Buffer
	opts := &sysdec.UserOptions{
		Pkg:           "stm32l4",
		InputFilename: "tools/sysdec/sys (stm32l4)",
		FieldsOnly:    true,
	}
	if err := sysdec.GenerateDeviceDecls(*Devices["stm32l4"], opts, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	committed, err := ioutil.ReadFile("../../../hardware/stm32l4/exti_fields.go")
	if err != nil {
		t.Fatalf("unable to read the committed constants: %v", err)
	}
	generated := constDecls(t, "generated", out.Bytes())
	existing := constDecls(t, "exti_fields.go", committed)
	for name, v := range generated {
		if existing[name] != v {
			t.Errorf("%s: generated %s but exti_fields.go has %q (run go generate)", name, v, existing[name])
		}
	}
	for name := range existing {
		if _, ok := generated[name]; !ok {
			t.Errorf("%s is in exti_fields.go but no longer generated", name)
		}
	}
	if len(generated) == 0 {
		t.Errorf("nothing was generated")
	}
}
