package main

import "github.com/Aquilabot/KreaPC-Builder/cmd"

func main() {
	cmd.Execute()
}
