// SPDX-License-Identifier: MIT

// Command numlin is the numlin CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/numlin/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
