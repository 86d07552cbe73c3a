package main

import (
	"fmt"
	"os"

	"clickchess/ui"
)

func main() {
	if err := ui.RunClickChess(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
