package main

import (
	"os"

	"github.com/oversett/oversett/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
