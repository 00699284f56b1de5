// Command my prints values of keys from the host-scoped profile
// funixtools/my.toml in the user configuration directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(defaultEnvironment())

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
