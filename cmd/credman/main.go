package main

import (
	"credman/cmd/credman/cmd"
)

func main() {
	cmd.Execute()
}
