package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-colorable"

	"github.com/ytget/youtube-alarm/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.SetOutput(colorable.NewColorableStderr())

	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
