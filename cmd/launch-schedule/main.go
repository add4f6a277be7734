package main

import "github.com/davarch/launch-schedule/cmd/launch-schedule/cli"

func main() {
	cli.Execute()
}
