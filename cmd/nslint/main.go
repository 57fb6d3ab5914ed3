package main

import (
	"os"

	"github.com/funvibe/nslint/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
