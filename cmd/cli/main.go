package main

import (
	"fmt"
	"os"

	"github.com/nestlist/nestlist/cmd/cli/root"

	// Register subcommands.
	_ "github.com/nestlist/nestlist/cmd/cli/listings"
	_ "github.com/nestlist/nestlist/cmd/cli/users"
)

func main() {
	// Execute the root Cobra command
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
