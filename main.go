package main

import (
	"os"

	"github.com/abhisek/quizchat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
