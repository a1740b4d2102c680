package main

import (
	"os"

	"github.com/aleister1102/phishscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
