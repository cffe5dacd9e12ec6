package main

import (
	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/cli"
)

func main() {
	cli.Execute()
}
