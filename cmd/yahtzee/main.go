package main

import "github.com/mcoot/yahtzee-go/internal/cli"

func main() {
	cli.Execute()
}
