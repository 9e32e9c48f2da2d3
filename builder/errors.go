// errors.go — sentinel-wrapping helper for builder, mirroring core/errors.go.
//
// builder does not define new sentinels of its own: every failure mode a
// constructor can hit (wrong wire type, channel out of range, property
// default out of range, ...) is already one of core's sentinels. builderErrorf
// exists only to attach the constructor's name to the message.

package builder

import "fmt"

func builderErrorf(fn string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("builder.%s: %s: %w", fn, fmt.Sprintf(format, args...), err)
}
