package main

import (
	"github.com/arloliu/serbench/cmd/serbench/cmd"
)

func main() {
	cmd.Execute()
}
