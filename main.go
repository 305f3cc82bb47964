package main

import "hanscan/internal/cli"

func main() {
	cli.Execute()
}
