package main

import "github.com/ozanturksever/go-fabric/cmd/sfctl/cmd"

func main() {
	cmd.Execute()
}
