package main

import "github.com/marshallshelly/voltdesk/cmd/voltdesk/commands"

func main() {
	commands.Execute()
}
