package main

import "github.com/monsterdex/monsterdex/cmd"

func main() {
	cmd.Execute()
}
