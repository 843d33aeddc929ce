package sysdec

// DeviceDef is a chip: its core and the peripherals bound into its memory
// map.  The generated package comment is built from the descriptive fields.
type DeviceDef struct {
	Vendor         string
	Name           string
	Series         string
	Description    string
	LicenseText    string
	Cpu            CPUDef
	NumCores       int
	MMIOBindings   map[string]int
	Peripheral     map[string]*PeripheralDef
	Package        string // this comes from the user opts
	SourceFilename string // this is the filename used to create all this
	OutTags        string //this comes from the command line option
	Import         string //this comes from command line option
}

type CPUDef struct {
	Name                string
	Description         string
	Revision            string
	LittleEndian        bool
	MMUPresent          bool
	MPUPresent          bool
	FPUPresent          bool
	DSPPresent          bool
	ICachePresent       bool
	DCachePresent       bool
	DeviceNumInterrupts int
}

// Units lists the optional units the core has, in a fixed order.
func (c CPUDef) Units() []string {
	var result []string
	for _, u := range []struct {
		present bool
		name    string
	}{
		{c.MMUPresent, "MMU"},
		{c.MPUPresent, "MPU"},
		{c.FPUPresent, "FPU"},
		{c.DSPPresent, "DSP"},
		{c.ICachePresent, "I-cache"},
		{c.DCachePresent, "D-cache"},
	} {
		if u.present {
			result = append(result, u.name)
		}
	}
	return result
}

type PeripheralDef struct {
	Name             string //if set, will be ignored, it is copied from the key in map
	Description      string
	PrependToName    string
	AppendToName     string
	HeaderStructName string
	AddressBlock     AddressBlockDef
	MMIOBase         int
	Access           AccessDef
	Register         map[string]*RegisterDef
	//computed by the generator, in memory order
	RegistersWithReserved []*RegisterDef
}

type AddressBlockDef struct {
	BaseAddress int
	Size        int
}

type RegisterDef struct {
	Name          string //if set, will be ignored, it is copied from the key in map
	Description   string
	AddressOffset int
	Size          int //bits, 0 means 32
	Access        AccessDef
	ResetValue    int
	Field         map[string]*FieldDef
	IsReserved    bool //computed internally
	Dim           int
	DimIncrement  int
	//these indice names are not crosschecked nor namespaced
	DimIndices map[string]int
}

// ValidMask is the union of the bits covered by the declared fields.
// Everything else in the register is reserved.
func (r *RegisterDef) ValidMask() uint32 {
	var mask uint32
	for _, f := range r.Field {
		mask |= f.BitRange.Mask()
	}
	return mask
}

// Words is the number of 32 bit slots the register occupies.
func (r *RegisterDef) Words() int {
	if r.Dim != 0 {
		return r.Dim
	}
	return 1
}

type FieldDef struct {
	Name            string
	Description     string
	BitRange        BitRangeDef
	Access          AccessDef
	EnumeratedValue map[string]*EnumeratedValueDef
}

type EnumeratedValueDef struct {
	Name        string //don't bother setting,will be copied from the map
	Description string
	Value       int
}
