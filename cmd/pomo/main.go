package main

import (
	"os"

	"github.com/pomo-sh/pomo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
