package main

import (
	"fmt"
	"os"

	"github.com/saleemayman/carpet-invoices/cmd/carpet-invoices/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
