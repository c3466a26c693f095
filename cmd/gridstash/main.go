package main

import (
	"log"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	log.SetPrefix("gridstash: ")
	log.SetFlags(log.LstdFlags)

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
