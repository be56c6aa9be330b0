package main

import (
	"fmt"
	"os"

	"github.com/magabrotheeeer/health-subscriptions/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
