// cmd/folio-demo/main.go
//
// Scripted walkthrough of the catalog: registers the sample documents and
// exercises every operation, printing the transcript to stdout.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mpetrovic/folio/internal/demo"
)

func main() {
	if err := demo.Run(os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
