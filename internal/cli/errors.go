package cli

import (
	"fmt"
	"os"
)

// Fatal prints msg, joined with a ": " separator the way the original
// puzzle errors package did, to stderr and terminates the process. It
// is the only place in this module allowed to call os.Exit; the core
// packages (internal/grid, internal/cover, internal/dlx) only ever
// return errors.
func Fatal(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg += ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
