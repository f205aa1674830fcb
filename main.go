package main

import "showdown-teambuilder/cmd"

func main() {
	cmd.Execute()
}
