// errors.go — sentinel errors for the core package.
//
// Error policy (mirrors builder/errors.go):
//   - Only sentinel variables are exported.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never stringified with formatted data at definition site;
//     call sites wrap them with wrapf to attach context.

package core

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a wire's declared type does not match the port
// it is being attached to, or an operator was invoked on a wire of the
// wrong SignalType.
var ErrTypeMismatch = errors.New("core: wire type mismatch")

// ErrUnplacedInput indicates the resolver reached an InputMarker that was
// never placed on the microcontroller surface.
var ErrUnplacedInput = errors.New("core: input not placed on microcontroller")

// ErrUnresolvedPlaceholder indicates the resolver (or a wire's ComponentID
// accessor) reached a Placeholder that was never replaced with a concrete
// producer.
var ErrUnresolvedPlaceholder = errors.New("core: placeholder not replaced before resolve")

// ErrOutOfBounds indicates a composite channel outside 1..32, a node
// position with a negative coordinate, or a slider or dropdown default
// outside its range. A position beyond the current width or height is not
// an error: the placement grid expands to cover it.
var ErrOutOfBounds = errors.New("core: value out of bounds")

// ErrDuplicatePlacement indicates two nodes were placed at the same grid
// position, or two microcontrollers in a batch compile share a name.
var ErrDuplicatePlacement = errors.New("core: duplicate placement")

// ErrScript indicates an embedded script failed external verification.
var ErrScript = errors.New("core: script verification failed")

// ErrDuplicateName indicates an input or output name was placed twice.
var ErrDuplicateName = errors.New("core: duplicate input name")

// wrapf wraps err with a "<method>: <message>" prefix, preserving it for
// errors.Is while adding context. Never used to manufacture new sentinels.
func wrapf(method string, err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
