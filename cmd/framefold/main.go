package main

import "github.com/framefold/responsive/cmd/framefold/commands"

func main() {
	commands.Execute()
}
