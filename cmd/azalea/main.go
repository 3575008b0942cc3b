package main

import (
	"os"

	"github.com/xazalea/language/cmd/azalea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
