package main

import (
	"os"

	"github.com/hashicorp-forge/wordy/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
