// Command soulformula computes the Soul Formula of a natal chart: the
// dispositor graph of the ten planets, its centers, orbits and points.
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
