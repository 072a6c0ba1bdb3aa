package main

import "github.com/sky-xo/treediff/internal/cli"

func main() {
	cli.Execute()
}
