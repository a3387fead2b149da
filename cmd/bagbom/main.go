// bagbom — raw material estimator for paper bag print jobs.
//
// Estimates paper, glue and ink quantities for a bag print job,
// assigns the fiscally-sequenced job number and writes the filled-in
// bill-of-material workbook.
//
// Build:
//
//	go build -o bagbom ./cmd/bagbom
package main

import (
	"os"

	"github.com/printhaus/bagbom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
