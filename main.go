package main

import "github.com/uh6654/plugdata/cmd"

func main() {
	cmd.Execute()
}
