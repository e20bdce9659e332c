package main

import "github.com/pfrederiksen/dmv-dates/internal/cli"

func main() {
	cli.Execute()
}
