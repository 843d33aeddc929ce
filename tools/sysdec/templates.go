package sysdec

var preambleTemplateText = `// Code generated by sysdec from {{.SourceFilename}}; DO NOT EDIT.

{{if .OutTags}}// +build {{.OutTags}}

{{end}}{{range .LicenseLines}}//{{.}}
{{end}}
{{comment .Doc}}
{{if .FieldsOnly}}
{{end}}package {{.Package}}
{{if not .FieldsOnly}}
import (
	"unsafe"

	"{{.Import}}"
)
{{end}}`

var registerTemplateText = `
{{comment .Description}}
type {{.StructName}} struct {
{{- range .Registers}}
	{{.Name}} {{if .Dim}}[{{.Dim}}]{{end}}{{$.Volatile}}.Register32 //0x{{printf "%02X" .Offset}}{{if .Access}} {{.Access}}{{end}}
{{- end}}
}
`

var deviceTemplateText = `
// {{.Name}}Base is the bus address of {{.Name}}.
const {{.Name}}Base = 0x{{printf "%08X" .Base}}

var {{.Name}} = (*{{.StructName}})(unsafe.Pointer(uintptr({{.Name}}Base)))
`

var bitFieldDeclTemplateText = `
// {{.Prefix}}Valid has the implemented bits of {{.Register}}.
const {{.Prefix}}Valid = 0x{{printf "%08X" .Valid}}
{{if .Reset}}
// {{.Prefix}}Reset is the value of {{.Register}} after reset.
const {{.Prefix}}Reset = 0x{{printf "%08X" .Reset}}
{{end}}{{range .Fields}}
{{comment .Description}}
const (
	{{.Const}}_Pos = {{.Lsb}}
	{{.Const}}_Msk = 0x{{printf "%X" .Mask}}
	{{.Const}} = {{.Const}}_Msk //{{.Access}}
{{- range .Enums}}
	{{.Const}} = {{.Value}}{{if .Description}} //{{.Description}}{{end}}
{{- end}}
)
{{end}}`

var constantTemplateText = `
{{- if .}}
const (
{{- range .}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{end}}`
