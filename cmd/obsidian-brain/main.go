package main

import (
	"github.com/raelum/obsidian-brain/internal/cli"
)

func main() {
	cli.Execute()
}
