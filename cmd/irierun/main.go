package main

import "github.com/irierun/irierun-go/internal/cli"

func main() {
	cli.Execute()
}
