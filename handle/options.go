package handle

import (
	"flag"
	"strings"
)

// Options controls which microcontrollers Run exports and where, backing
// the --microcontroller/--vehicle/--select flags.
type Options struct {
	// Microcontroller, when true, exports every selected microcontroller to
	// the host simulator's microprocessor directory.
	Microcontroller bool
	// Vehicles lists vehicle files each selected microcontroller should be
	// merged into.
	Vehicles []string
	// Select, if non-empty, restricts Run to microcontrollers whose name
	// contains one of these substrings. An empty Select selects everything.
	Select []string
	// InstallRoot overrides the host simulator's save-data root directory;
	// empty means auto-detect via findInstallDir's platform rules.
	InstallRoot string
}

// ParseFlags parses a build script's command-line arguments into Options,
// matching parser_arguments's flag names and semantics one-for-one:
// -m/--microcontroller, -v/--vehicle (comma-separated), -s/--select
// (comma-separated).
func ParseFlags(args []string) (Options, error) {
	fs := flag.NewFlagSet("swmc", flag.ContinueOnError)
	var microcontroller bool
	var vehicle, sel string
	fs.BoolVar(&microcontroller, "microcontroller", false, "export microcontrollers to the Stormworks microcontroller directory")
	fs.BoolVar(&microcontroller, "m", false, "shorthand for -microcontroller")
	fs.StringVar(&vehicle, "vehicle", "", "export microcontrollers to vehicles, comma-separated")
	fs.StringVar(&vehicle, "v", "", "shorthand for -vehicle")
	fs.StringVar(&sel, "select", "", "select which microcontrollers to export by name, comma-separated")
	fs.StringVar(&sel, "s", "", "shorthand for -select")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return Options{
		Microcontroller: microcontroller,
		Vehicles:        splitNonEmpty(vehicle),
		Select:          splitNonEmpty(sel),
	}, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
