package main

import (
	"context"
	"fmt"
	"os"

	"github.com/asksunna/salat/internal/cli"
)

// version is stamped at build time:
//
//	go build -ldflags "-X main.version=v1.0.0" ./cmd/salat
var version = "dev"

func main() {
	root := cli.NewRootCmd(version)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "salat:", err)
		os.Exit(1)
	}
}
