package main

import (
	"log"
	"os"

	_ "scrumboard/docs"
)

// @title           Scrum Board API
// @version         1.0
// @description     Projects, sprints and drag and drop sprint boards for organizations.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
