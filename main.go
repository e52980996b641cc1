package main

import "github.com/mindvault/mindvault/cmd"

func main() {
	cmd.Execute()
}
