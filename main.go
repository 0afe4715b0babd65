package main

import (
	"os"

	"github.com/ziadkadry99/readmanual/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
