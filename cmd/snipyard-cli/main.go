package main

import "snipyard/cmd/snipyard-cli/cmd"

func main() {
	cmd.Execute()
}
