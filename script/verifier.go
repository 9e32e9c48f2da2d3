package script

import (
	"errors"
	"strings"
)

// ErrEmpty is returned by PassthroughVerifier for blank source.
var ErrEmpty = errors.New("script: source is empty")

// ErrNulByte is returned by PassthroughVerifier when source contains a NUL
// byte, which the in-game Lua runtime rejects outright.
var ErrNulByte = errors.New("script: source contains a NUL byte")

// Verifier checks embedded Lua source before it is baked into a
// microcontroller. A real verifier would parse and minify; this package
// only specifies the contract other components depend on.
type Verifier interface {
	Verify(source string) error
}

// PassthroughVerifier performs the minimum check that does not require a
// Lua parser: source must be non-empty and free of NUL bytes. It exists so
// callers without a real Lua toolchain wired in can still exercise the
// rest of the compiler end to end.
type PassthroughVerifier struct{}

// Verify implements Verifier.
func (PassthroughVerifier) Verify(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrEmpty
	}
	if strings.ContainsRune(source, 0) {
		return ErrNulByte
	}
	return nil
}
