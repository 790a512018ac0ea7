package main

import (
	"github.com/alechouse97/recipe-helper/pkg/cli"
)

func main() {
	cli.Execute()
}
