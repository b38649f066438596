package main

import (
	cmd "github.com/getzep/annotext/cmd/annotext"
)

func main() {
	cmd.Execute()
}
