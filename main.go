package main

import "github.com/KaramelBytes/housestat-cli/cmd"

func main() {
	cmd.Execute()
}
