// timestring converts human-readable duration strings into numbers.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/timestring/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
