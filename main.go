package main

import "github.com/neondrift/racesim/cmd"

func main() {
	cmd.Execute()
}
