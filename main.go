package main

import "ttrpg-pi/cmd"

func main() {
	cmd.Execute()
}
