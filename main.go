package main

import (
	"log"

	"foodiefy/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("foodiefy: %v", err)
	}
}
