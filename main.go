package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"vexdrift/internal/game"
	"vexdrift/internal/save"
)

func main() {
	path, err := save.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	game.NewSession(path).Run(screen)
}
