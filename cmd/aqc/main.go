// SPDX-License-Identifier: MIT

// Command aqc fits CNOT-network circuits to random reachable targets and
// prints the generated networks.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
