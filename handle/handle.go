package handle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/emit"
	"github.com/stormworks-utils/sw-mc-builder/optimize"
	"github.com/stormworks-utils/sw-mc-builder/resolve"
	"github.com/stormworks-utils/sw-mc-builder/vehicle"
)

// BuilderIdentifier is stamped into every exported document's metadata
// under "builder_identifier". vehicle.Merge does not read it: it matches
// microprocessor definitions by name alone.
const BuilderIdentifier = "Built with sw-mc-builder"

// Compiled pairs a resolved, optimized microcontroller with its emitted
// document, ready for export.
type Compiled struct {
	Name string
	MC   *core.Microcontroller
	Doc  emit.Document
}

// Run resolves, optimizes and emits every microcontroller in mcs that
// matches opts.Select, then exports the result according to
// opts.Microcontroller and opts.Vehicles. It mirrors handle_mcs: a name
// collision anywhere in mcs (checked before the select filter) is fatal, a
// select filter that matches nothing is not.
func Run(mcs []*core.Microcontroller, opts Options, emitter emit.Emitter, layouter emit.Layouter) ([]Compiled, error) {
	selected, err := selectMicrocontrollers(mcs, opts.Select)
	if err != nil {
		return nil, err
	}

	compiled := make([]Compiled, 0, len(selected))
	for _, mc := range selected {
		if err := resolve.Resolve(mc); err != nil {
			return nil, wrapf("Run", err, "resolving %q", mc.Name)
		}
		optimize.Optimize(mc)

		positions, err := layouter.Layout(mc)
		if err != nil {
			return nil, wrapf("Run", err, "laying out %q", mc.Name)
		}
		doc, err := emitter.Emit(mc, positions)
		if err != nil {
			return nil, wrapf("Run", err, "emitting %q", mc.Name)
		}
		doc.Metadata["builder_identifier"] = BuilderIdentifier
		compiled = append(compiled, Compiled{Name: mc.Name, MC: mc, Doc: doc})
	}

	installRoot := opts.InstallRoot
	if installRoot == "" && (opts.Microcontroller || len(opts.Vehicles) > 0) {
		installRoot, err = findInstallDir("")
		if err != nil {
			return compiled, wrapf("Run", err, "locating Stormworks installation")
		}
	}

	if opts.Microcontroller {
		for _, c := range compiled {
			if err := writeMicrocontroller(installRoot, c); err != nil {
				return compiled, err
			}
		}
	}

	vehicles := slices.Clone(opts.Vehicles)
	slices.Sort(vehicles)
	for _, vehicleName := range vehicles {
		docs := make([]emit.Document, len(compiled))
		for i, c := range compiled {
			docs[i] = c.Doc
		}
		if err := vehicle.Merge(nameToPath(installRoot, vehicleName, "vehicles"), docs); err != nil {
			return compiled, wrapf("Run", err, "merging into vehicle %q", vehicleName)
		}
	}

	return compiled, nil
}

func selectMicrocontrollers(mcs []*core.Microcontroller, patterns []string) ([]*core.Microcontroller, error) {
	seen := make(map[string]bool, len(mcs))
	out := make([]*core.Microcontroller, 0, len(mcs))
	for _, mc := range mcs {
		if seen[mc.Name] {
			return nil, fmt.Errorf("handle.selectMicrocontrollers: %w: %w: %q", ErrDuplicateName, core.ErrDuplicatePlacement, mc.Name)
		}
		seen[mc.Name] = true
		if !matchesAny(mc.Name, patterns) {
			continue
		}
		out = append(out, mc)
	}
	return out, nil
}

func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// nameToPath mirrors name_to_path: a name already ending in an extension is
// treated as a direct filesystem path, otherwise it is resolved under the
// install root's data/<kind> directory.
func nameToPath(installRoot, name, kind string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(installRoot, "data", kind, name+".xml")
}

func writeMicrocontroller(installRoot string, c Compiled) error {
	path := filepath.Join(installRoot, "data", "microprocessors", c.Name+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapf("writeMicrocontroller", err, "creating %s", filepath.Dir(path))
	}
	data, err := json.MarshalIndent(c.Doc, "", "  ")
	if err != nil {
		return wrapf("writeMicrocontroller", err, "marshaling %q", c.Name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapf("writeMicrocontroller", err, "writing %s", path)
	}
	return nil
}
