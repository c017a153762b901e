/*
Copyright © 2025 b5-ai
*/
package main

import (
	"github.com/b5-ai/study-companion-be/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	// Missing .env is fine in deployments that configure the
	// environment directly.
	_ = godotenv.Load()
}
