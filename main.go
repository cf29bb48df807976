package main

import "github.com/Tiliavir/clocked/cmd"

func main() {
	cmd.Execute()
}
