package main

import (
	"fmt"
	"os"

	"github.com/llehouerou/smartpack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smartpack:", err)
		os.Exit(1)
	}
}
