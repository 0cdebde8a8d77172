package main

import (
	"flag"
	"log"
	"os"

	"github.com/softsphere/raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("GET http://localhost:%d/api/render to render a scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
