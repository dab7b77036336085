package main

import (
	"fmt"
	"os"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
