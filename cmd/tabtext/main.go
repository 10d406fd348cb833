// Command tabtext is the CLI for working with typed delimited-text tables:
// heading extraction, draft schema inference, initializer generation, and
// field-level utilities.
package main

import "github.com/mesh-intelligence/tabtext/internal/cli"

func main() {
	cli.Execute()
}
