package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raycast/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	workers := flag.Int("workers", 0, "Number of cast workers per request (0 = one per CPU)")
	flag.Parse()

	webServer := server.NewServer(*port, *workers)

	log.Printf("Ray Cast Web Server")
	log.Printf("POST query documents to http://localhost:%d/api/cast", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
