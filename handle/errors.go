package handle

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when two microcontrollers passed to Run
// share a name; the export paths below key off Microcontroller.Name, so a
// collision would silently overwrite one of them.
var ErrDuplicateName = errors.New("duplicate microcontroller name")

func wrapf(fn string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("handle.%s: %s: %w", fn, fmt.Sprintf(format, args...), err)
}
