package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/aliskhannn/sunhwa-master/cmd/sunhwa/commands"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
