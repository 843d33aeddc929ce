package stm32l4

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

// Exported functions need a comment of their own or must sit in a run of
// one-liners headed by one.  String methods are exempt.
func TestExportedFunctionsDocumented(t *testing.T) {
	for _, name := range []string{"port.go", "lines.go", "registers.go", "state.go", "exti.go"} {
		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		grouped := false
		prevEnd := -1
		for _, decl := range file.Decls {
			start := fset.Position(decl.Pos()).Line
			end := fset.Position(decl.End()).Line
			fn, ok := decl.(*ast.FuncDecl)
			switch {
			case !ok:
				grouped = false
			case fn.Doc != nil:
				grouped = start == end
			case grouped && start == prevEnd+1 && start == end:
				//one-liner continuing a documented group
			case fn.Name.IsExported() && fn.Name.Name != "String":
				t.Errorf("%s:%d: %s has no comment", name, start, fn.Name.Name)
				grouped = false
			default:
				grouped = false
			}
			prevEnd = end
		}
	}
}
