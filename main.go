package main

import (
	"os"

	"github.com/docprobe/docprobe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
