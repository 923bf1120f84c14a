package main

import (
	"log"
	"os"

	"github.com/jotdeck/jotdeck/cmd"
	"github.com/jotdeck/jotdeck/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
