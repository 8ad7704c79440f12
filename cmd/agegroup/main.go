package main

import "github.com/axzolotle/learning-intern/internal/cli"

func main() {
	cli.Execute()
}
