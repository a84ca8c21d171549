package main

import "github.com/galform/mergertree/cmd/mergertreebuilder/cmd"

func main() {
	cmd.Execute()
}
