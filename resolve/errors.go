package resolve

import "fmt"

func wrapf(fn string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("resolve.%s: %s: %w", fn, fmt.Sprintf(format, args...), err)
}
