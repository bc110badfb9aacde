package main

import "github.com/josephlewis42/oyster/cmd"

func main() {
	cmd.Execute()
}
