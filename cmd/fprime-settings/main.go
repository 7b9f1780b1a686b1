package main

import (
	"os"

	"github.com/Brian-Campuzano/fprime/cmd/fprime-settings/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
