// Command naum compares snapshots of compiled JVM APIs and reports binary
// and source compatibility changes.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errBreaking) {
			_, _ = fmt.Fprintln(os.Stderr, "naum:", err)
		}
		os.Exit(1)
	}
}
