package easel

import (
	"fmt"
	"os"
)

// debugf prints a line to stderr when debug mode is enabled.
func (e *Editor) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}
