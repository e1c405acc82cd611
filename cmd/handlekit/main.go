package main

import (
	"os"

	"github.com/dmitrymomot/handlekit/cli"
)

func main() {
	os.Exit(cli.Execute())
}
