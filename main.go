package main

import (
	"log"

	"github.com/coursewave/coursewave-app/cmd/server"
)

func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		log.Fatalf("application init failed: %v", err)
	}
	defer cleanup()
	defer app.Stop()

	if err := app.Run(); err != nil {
		log.Fatalf("application run failed: %v", err)
	}
}
