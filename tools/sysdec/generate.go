package sysdec

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"path"
	"sort"
	"strings"
	"text/template"
)

// UserOptions come from the command line.
type UserOptions struct {
	Out           string //output file, empty for stdout
	Pkg           string //package to emit generated code into
	InputFilename string //recorded in the generated header
	OutTags       string //build tags copied verbatim to the output
	Import        string //package that has volatile.Register32
	Leave         bool   //leave the unformatted output if gofmt fails
	FieldsOnly    bool   //only the field and mask constants, no structs or globals
}

type templateGroup struct {
	device   *template.Template
	bitField *template.Template
	preamble *template.Template
	constant *template.Template
	register *template.Template
}

var templateFuncs = template.FuncMap{
	"comment": comment,
}

func createOutputTemplates() *templateGroup {
	parse := func(name, text string) *template.Template {
		return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
	}
	return &templateGroup{
		device:   parse("device", deviceTemplateText),
		bitField: parse("bitFieldDecl", bitFieldDeclTemplateText),
		preamble: parse("preamble", preambleTemplateText),
		constant: parse("constant", constantTemplateText),
		register: parse("register", registerTemplateText),
	}
}

// comment turns free text into a // comment block.
func comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString("//")
			continue
		}
		b.WriteString("// " + strings.TrimLeft(line, "\t"))
	}
	return b.String()
}

type deviceView struct {
	Name           string
	Doc            string
	Package        string
	Import         string
	OutTags        string
	SourceFilename string
	LicenseLines   []string
	FieldsOnly     bool
}

type peripheralView struct {
	Name        string
	StructName  string
	Description string
	Volatile    string
	Base        uint64
	Registers   []registerView
}

type registerView struct {
	Name   string
	Offset int
	Dim    int
	Access string
}

type fieldGroupView struct {
	Prefix   string
	Register string
	Valid    uint32
	Reset    uint32
	Fields   []fieldView
}

type fieldView struct {
	Const       string
	Description string
	Access      string
	Lsb         int
	Mask        uint32
	Enums       []enumView
}

type enumView struct {
	Const       string
	Value       int
	Description string
}

type constantView struct {
	Name  string
	Value int
}

// GenerateDeviceDecls writes Go source for every peripheral of device that
// has an entry in MMIOBindings.  The output is gofmt'ed; nothing is written
// if the declaration is inconsistent.  With opts.FieldsOnly only the
// constants are written, for a package that declares its own register map.
func GenerateDeviceDecls(device DeviceDef, opts *UserOptions, fp io.Writer) error {
	device.OutTags = opts.OutTags
	device.Import = opts.Import
	device.Package = opts.Pkg
	device.SourceFilename = opts.InputFilename
	if device.Import == "" && !opts.FieldsOnly {
		return fmt.Errorf("%s: no import path for the volatile package", device.Name)
	}

	group := createOutputTemplates()
	var output bytes.Buffer

	dv := deviceView{
		Name:           device.Name,
		Doc:            deviceDoc(&device),
		Package:        device.Package,
		Import:         device.Import,
		OutTags:        device.OutTags,
		SourceFilename: device.SourceFilename,
		LicenseLines:   licenseLines(device.LicenseText),
		FieldsOnly:     opts.FieldsOnly,
	}
	//preamble has just package, build tags, etc
	if err := group.preamble.Execute(&output, dv); err != nil {
		return fmt.Errorf("failed to execute the preamble template: %w", err)
	}

	names := make([]string, 0, len(device.Peripheral))
	for name := range device.Peripheral {
		names = append(names, name)
	}
	sort.Strings(names)

	constants := map[string]int{}
	for _, name := range names {
		p := device.Peripheral[name]
		addr, ok := device.MMIOBindings[name]
		if !ok {
			log.Printf("%s: peripheral %s has no MMIO binding, skipping", device.Name, name)
			continue
		}
		p.Name = name //copy it from the map
		p.MMIOBase = addr
		if err := layoutPeripheral(p); err != nil {
			return err
		}
		for _, r := range p.RegistersWithReserved {
			for k, v := range r.DimIndices {
				constants[k] = v
			}
		}
		pv := peripheralView{
			Name:        p.Name,
			StructName:  structName(p),
			Description: p.Name + ": " + p.Description,
			Volatile:    path.Base(device.Import),
			Base:        uint64(p.MMIOBase) + uint64(p.AddressBlock.BaseAddress),
		}
		for _, r := range p.RegistersWithReserved {
			rv := registerView{Name: r.Name, Offset: r.AddressOffset, Dim: r.Dim}
			if !r.IsReserved {
				rv.Access = r.Access.String()
			}
			pv.Registers = append(pv.Registers, rv)
		}
		if !opts.FieldsOnly {
			if err := group.register.Execute(&output, pv); err != nil {
				return fmt.Errorf("failed to execute the register template: %w", err)
			}
			if err := group.device.Execute(&output, pv); err != nil {
				return fmt.Errorf("failed to execute the device template: %w", err)
			}
		}
		// do bitfields
		for _, r := range p.RegistersWithReserved {
			if r.IsReserved || len(r.Field) == 0 {
				continue
			}
			if err := group.bitField.Execute(&output, fieldGroup(p, r)); err != nil {
				return fmt.Errorf("failed to execute the bitfield template: %w", err)
			}
		}
	}
	if err := group.constant.Execute(&output, sortedConstants(constants)); err != nil {
		return fmt.Errorf("failed to execute the constants template: %w", err)
	}

	formatted, err := format.Source(output.Bytes())
	if err != nil {
		if opts.Leave {
			fp.Write(output.Bytes())
		}
		return fmt.Errorf("%s: generated source does not parse: %w", device.Name, err)
	}
	if _, err := fp.Write(formatted); err != nil {
		return fmt.Errorf("unable to copy output: %w", err)
	}
	return nil
}

// layoutPeripheral checks the registers of p and orders them, with the
// gaps filled by unexported reserved words, into p.RegistersWithReserved.
func layoutPeripheral(p *PeripheralDef) error {
	regs := make([]*RegisterDef, 0, len(p.Register))
	for name, r := range p.Register {
		r.Name = strings.TrimSuffix(name, "[%s]")
		if err := checkRegister(p, r); err != nil {
			return err
		}
		regs = append(regs, r)
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].AddressOffset < regs[j].AddressOffset
	})

	p.RegistersWithReserved = []*RegisterDef{}
	count := 0
	reserve := func(offset int) {
		p.RegistersWithReserved = append(p.RegistersWithReserved, &RegisterDef{
			Name:          fmt.Sprintf("reserved%03d", count),
			AddressOffset: offset,
			Size:          32,
			IsReserved:    true,
		})
		count++
	}
	cursor := 0
	for _, r := range regs {
		if r.AddressOffset < cursor {
			return fmt.Errorf("%s: register %s at 0x%02x overlaps the register before it",
				p.Name, r.Name, r.AddressOffset)
		}
		for ; cursor < r.AddressOffset; cursor += 4 {
			reserve(cursor)
		}
		p.RegistersWithReserved = append(p.RegistersWithReserved, r)
		cursor += 4 * r.Words()
	}
	for ; cursor < p.AddressBlock.Size; cursor += 4 {
		reserve(cursor)
	}
	return nil
}

func checkRegister(p *PeripheralDef, r *RegisterDef) error {
	if r.Size == 0 {
		r.Size = 32
	}
	if r.Size != 32 {
		return fmt.Errorf("%s.%s: unable to handle %d bit registers", p.Name, r.Name, r.Size)
	}
	if r.AddressOffset%4 != 0 {
		return fmt.Errorf("%s.%s: offset 0x%x is not word aligned", p.Name, r.Name, r.AddressOffset)
	}
	if r.Dim != 0 && r.DimIncrement != 4 {
		return fmt.Errorf("%s.%s: unable to handle non-32 bit registers in arrays", p.Name, r.Name)
	}
	if end := r.AddressOffset + 4*r.Words(); end > p.AddressBlock.Size {
		return fmt.Errorf("%s.%s: ends at 0x%x, past the address block (0x%x)",
			p.Name, r.Name, end, p.AddressBlock.Size)
	}
	if !r.Access.IsSet() {
		r.Access = p.Access
	}
	var seen uint32
	for name, f := range r.Field {
		f.Name = name
		if f.BitRange.Msb >= r.Size {
			return fmt.Errorf("%s.%s.%s: bits %s do not fit in the register",
				p.Name, r.Name, name, f.BitRange.String())
		}
		if seen&f.BitRange.Mask() != 0 {
			return fmt.Errorf("%s.%s.%s: overlaps another field", p.Name, r.Name, name)
		}
		seen |= f.BitRange.Mask()
		if !f.Access.IsSet() {
			if !r.Access.IsSet() {
				return fmt.Errorf("neither register %s nor field %s "+
					"has declared access level (r, w, rw, w1c or w1t)", r.Name, name)
			}
			f.Access = r.Access
		}
		for ename, e := range f.EnumeratedValue {
			e.Name = ename //copy name from map
		}
	}
	return nil
}

// deviceDoc is the comment on the generated package clause: the device,
// who makes it and the core it is built around.
func deviceDoc(d *DeviceDef) string {
	lines := []string{d.Name + ": " + d.Description}
	var detail []string
	if d.Vendor != "" {
		vendor := "Vendor: " + d.Vendor
		if d.Series != "" {
			vendor += ", " + d.Series + " series"
		}
		detail = append(detail, vendor+".")
	}
	if c := d.Cpu; c.Name != "" {
		cores := d.NumCores
		if cores == 0 {
			cores = 1
		}
		core := fmt.Sprintf("Core: %d x %s (%s)", cores, c.Description, c.Name)
		if c.Revision != "" {
			core += " " + c.Revision
		}
		if c.LittleEndian {
			core += ", little endian"
		} else {
			core += ", big endian"
		}
		if c.DeviceNumInterrupts != 0 {
			core += fmt.Sprintf(", %d interrupts", c.DeviceNumInterrupts)
		}
		detail = append(detail, core+".")
		if units := c.Units(); len(units) != 0 {
			detail = append(detail, "Units: "+strings.Join(units, ", ")+".")
		}
	}
	if len(detail) != 0 {
		lines = append(lines, "")
		lines = append(lines, detail...)
	}
	return strings.Join(lines, "\n")
}

func structName(p *PeripheralDef) string {
	if p.HeaderStructName != "" {
		return p.HeaderStructName
	}
	return p.PrependToName + p.Name + p.AppendToName + "RegisterMap"
}

func fieldGroup(p *PeripheralDef, r *RegisterDef) fieldGroupView {
	g := fieldGroupView{
		Prefix:   p.Name + "_" + r.Name,
		Register: r.Name,
		Valid:    r.ValidMask(),
		Reset:    uint32(r.ResetValue),
	}
	for _, f := range r.Field {
		fv := fieldView{
			Const:       g.Prefix + "_" + f.Name,
			Description: f.Name + ": " + f.Description,
			Access:      f.Access.String(),
			Lsb:         f.BitRange.Lsb,
			Mask:        f.BitRange.Mask(),
		}
		for _, e := range f.EnumeratedValue {
			fv.Enums = append(fv.Enums, enumView{
				Const:       fv.Const + "_" + e.Name,
				Value:       e.Value,
				Description: e.Description,
			})
		}
		sort.Slice(fv.Enums, func(i, j int) bool {
			return fv.Enums[i].Value < fv.Enums[j].Value
		})
		g.Fields = append(g.Fields, fv)
	}
	sort.Slice(g.Fields, func(i, j int) bool {
		return g.Fields[i].Lsb < g.Fields[j].Lsb
	})
	return g
}

func sortedConstants(constants map[string]int) []constantView {
	result := make([]constantView, 0, len(constants))
	for k, v := range constants {
		result = append(result, constantView{Name: k, Value: v})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func licenseLines(text string) []string {
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var result []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			line = " " + line
		}
		result = append(result, line)
	}
	return result
}
