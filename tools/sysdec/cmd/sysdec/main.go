package main

import (
	"flag"
	"log"
	"os"
	"sort"
	"strings"

	"stm32exti/tools/sysdec"
	"stm32exti/tools/sysdec/sys"
)

var outfile = flag.String("o", "", "output filename")
var pkg = flag.String("p", "main", "package to emit generated code into")
var outtags = flag.String("b", "", "output build tags (copied verbatim to output)")
var imp = flag.String("i", "stm32exti/hardware/volatile", "package name that has volatile.Register32")
var leave = flag.Bool("l", false, "leave unformatted output when the result does not parse")
var fieldsOnly = flag.Bool("f", false, "emit only the field and mask constants (no register structs or globals)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: sysdec [-f] -p <pkg> -o <outputfile> <device> (one of: %s)", known())
	}
	name := strings.ToLower(flag.Arg(0))
	device, ok := sys.Devices[name]
	if !ok {
		log.Fatalf("unknown device %q, known devices are: %s", flag.Arg(0), known())
	}
	opts := &sysdec.UserOptions{
		Out:           *outfile,
		Pkg:           *pkg,
		InputFilename: "tools/sysdec/sys (" + name + ")",
		OutTags:       *outtags,
		Import:        *imp,
		Leave:         *leave,
		FieldsOnly:    *fieldsOnly,
	}
	log.Printf("creating output based on system declaration of '%s'", device.Name)

	fp := os.Stdout
	if opts.Out != "" {
		var err error
		fp, err = os.Create(opts.Out)
		if err != nil {
			log.Fatalf("opening output file: %v", err)
		}
	}
	if err := sysdec.GenerateDeviceDecls(*device, opts, fp); err != nil {
		log.Fatalf("%v", err)
	}
	if err := fp.Close(); err != nil {
		log.Fatalf("closing output: %v", err)
	}
}

func known() string {
	names := make([]string, 0, len(sys.Devices))
	for n := range sys.Devices {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
