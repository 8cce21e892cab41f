package main

import "github.com/factorlab/craftbench/pkg/cli"

func main() {
	cli.Execute()
}
