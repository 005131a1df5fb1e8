package main

import "github.com/wirecall/wirecall/cmd"

func main() {
	cmd.Execute()
}
