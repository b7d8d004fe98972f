package main

import (
	"os"

	"github.com/adelorme/cvmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
