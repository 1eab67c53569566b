// file: main.go
// version: 1.0.0
// guid: 8f0a2b4c-6d1e-4f3a-9b57-c2e8d4a6f091

package main

import (
	"fmt"
	"os"

	"github.com/managedkaos/oreilly-book-searcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
