package main

import (
	"os"

	"github.com/avasek/userdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
