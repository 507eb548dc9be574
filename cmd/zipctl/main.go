package main

import "zipabout/internal/cli"

func main() {
	cli.Execute()
}
