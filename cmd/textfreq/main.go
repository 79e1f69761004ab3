package main

import "textfreq/internal/cli"

func main() {
	cli.Execute()
}
