package main

import (
	"os"

	"github.com/workshop-registry/cmd/workshop/commands"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
