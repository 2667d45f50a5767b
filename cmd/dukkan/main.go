package main

import "github.com/sahla-io/dukkan/internal/cmd"

func main() {
	cmd.Execute()
}
