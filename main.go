package main

import (
	"context"
	"os"

	"github.com/pkgscope/pkgscope/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
