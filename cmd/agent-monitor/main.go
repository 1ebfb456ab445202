package main

import (
	"os"

	"github.com/iCrack3x/agent-monitor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
