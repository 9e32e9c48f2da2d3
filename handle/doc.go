// Package handle is the compile-and-export entry point a build script
// calls once it has finished constructing one or more *core.Microcontroller
// values: resolve and optimize every selected microcontroller, then
// optionally write each to the host simulator's microprocessor directory
// and/or merge it into one or more vehicle files.
package handle
