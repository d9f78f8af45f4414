package main

import (
	"os"

	"github.com/sitecheck/sitecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
