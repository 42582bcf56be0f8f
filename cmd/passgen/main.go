package main

import (
	"os"

	"github.com/vaultpass/passgen/internal/app"
	"github.com/vaultpass/passgen/internal/clipboard"
)

func main() {
	os.Exit(app.Run(os.Args[1:], app.Dependencies{
		In:        os.Stdin,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		Clipboard: clipboard.Detect(),
	}))
}
