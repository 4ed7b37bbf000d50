package main

import "github.com/nurikabe-dev/nurikabe/cmd/nurikabe/cmd"

func main() {
	cmd.Execute()
}
