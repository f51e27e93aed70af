// Command textfn splits, joins and reformats delimited text.
package main

import (
	"context"
	"os"

	"github.com/shapestone/shape-dsv/internal/cli"
)

// Version is set via -ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.Execute(context.Background(), Version))
}
