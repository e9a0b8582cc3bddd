package main

import (
	"os"

	"github.com/railops/sectionctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
