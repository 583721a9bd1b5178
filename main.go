package main

import "github.com/mvey/healthsum/cmd"

func main() {
	cmd.Execute()
}
