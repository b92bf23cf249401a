package main

import (
	"os"

	"github.com/sellonet/sellonet-web/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
