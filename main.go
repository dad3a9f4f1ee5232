package main

import "github.com/sensorflo/testdox/cmd"

func main() {
	cmd.Execute()
}
