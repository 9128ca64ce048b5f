package main

import (
	"os"

	"github.com/agentfs/update-version/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
