// Command ilocli talks to one HP iLO controller from the shell: power,
// UID LED, inventory and the controller event log.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
