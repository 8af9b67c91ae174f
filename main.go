package main

import "github.com/screengen/screengen/cmd"

func main() {
	cmd.Execute()
}
