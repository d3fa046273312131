package main

import "github.com/guskit/gus/internal/cmd"

func main() {
	cmd.Execute()
}
