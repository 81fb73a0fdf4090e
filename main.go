package main

import "itemgen/cmd"

func main() {
	cmd.Execute()
}
