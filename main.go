package main

import "github.com/soundreel/cli/internal/cmd"

func main() {
	cmd.Execute()
}
