package main

import (
	"os"

	"github.com/freeeve/datc-orders/cmd/datc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
