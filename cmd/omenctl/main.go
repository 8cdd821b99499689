// Package main is the omenctl entrypoint.
package main

import "github.com/omen-linux/omenctl/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
