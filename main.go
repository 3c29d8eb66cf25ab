package main

import "github.com/theirongolddev/fittrack/cmd"

func main() {
	cmd.Execute()
}
