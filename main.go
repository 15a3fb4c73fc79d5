package main

import "github.com/tedsearch/tedsearch/cmd"

func main() {
	cmd.Execute()
}
