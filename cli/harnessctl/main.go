package main

import "github.com/appspec/harness/cli/cmd"

func main() {
	cmd.Execute()
}
