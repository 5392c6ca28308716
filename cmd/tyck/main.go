package main

import (
	"os"

	"github.com/funvibe/tyck/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
