package main

import (
	"fmt"
	"log"
	"os"

	"github.com/keybindery/keybindery/internal/app"
	"github.com/keybindery/keybindery/internal/config"
)

const version = "v0.3.0"

func main() {
	log.Printf("Keybindery %s starting...", version)

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	application := app.New(cfg, version)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	application.Run()
}
