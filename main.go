package main

import "github.com/threadly/threadly/cmd"

func main() {
	cmd.Execute()
}
