// Command matmul drives the intmat matrix engines: a replay of the classic
// demo products and a sequential-vs-parallel benchmark.
package main

import "github.com/katalvlaran/intmat/internal/cli"

func main() {
	cli.Execute()
}
