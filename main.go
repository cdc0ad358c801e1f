package main

import "mortgage-strategy/cmd"

func main() {
	cmd.Execute()
}
