package main

import (
	"fmt"
	"os"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
