package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// blankBuildScript is the Go-native equivalent of the original BLANK_MC
// template: a minimal program wiring two inputs into an Add and placing
// the result, ready to edit by hand.
const blankBuildScript = `package main

import (
	"log"
	"os"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/emit"
	"github.com/stormworks-utils/sw-mc-builder/handle"
)

func build() (*core.Microcontroller, error) {
	mc := core.NewMicrocontroller("Example MC")

	input1, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 0, Y: 0})
	if err != nil {
		return nil, err
	}
	input2, err := mc.PlaceInput("Input 2", core.Number, core.GridPosition{X: 0, Y: 1})
	if err != nil {
		return nil, err
	}

	added, err := builder.Add(input1, input2)
	if err != nil {
		return nil, err
	}

	if err := mc.PlaceOutput("Added", added, core.GridPosition{X: 1, Y: 0}); err != nil {
		return nil, err
	}
	return mc, nil
}

func main() {
	mc, err := build()
	if err != nil {
		log.Fatal(err)
	}
	opts, err := handle.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if _, err := handle.Run([]*core.Microcontroller{mc}, opts, emit.DefaultEmitter{}, emit.GridLayouter{}); err != nil {
		log.Fatal(err)
	}
}
`

// buildManifest is the YAML sidecar init writes next to the generated Go
// source, recording default export options. "swmc run" does not read it;
// the export is decided by the flags the build script receives.
type buildManifest struct {
	Name            string   `yaml:"name"`
	Select          []string `yaml:"select,omitempty"`
	Vehicles        []string `yaml:"vehicles,omitempty"`
	Microcontroller bool     `yaml:"microcontroller"`
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("init: expected exactly one argument, the microcontroller project name")
	}
	name := fs.Arg(0)

	goPath := name + ".go"
	if _, err := os.Stat(goPath); err == nil {
		return fmt.Errorf("init: file %s already exists", goPath)
	}
	if err := os.WriteFile(goPath, []byte(blankBuildScript), 0o644); err != nil {
		return fmt.Errorf("init: writing %s: %w", goPath, err)
	}

	manifest := buildManifest{Name: filepath.Base(name), Microcontroller: true}
	yamlBytes, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("init: marshaling manifest: %w", err)
	}
	manifestPath := name + ".yaml"
	if err := os.WriteFile(manifestPath, yamlBytes, 0o644); err != nil {
		return fmt.Errorf("init: writing %s: %w", manifestPath, err)
	}

	fmt.Printf("Initialized new microcontroller project at %s (manifest %s)\n", goPath, manifestPath)
	return nil
}
