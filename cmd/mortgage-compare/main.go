package main

import "github.com/iwvelando/mortgage-compare/internal/cli"

func main() {
	cli.Execute()
}
