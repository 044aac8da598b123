package main

import (
	"flag"
	"log"
	"runtime"

	"hearth/pkg/app"
	"hearth/pkg/config"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to configuration file; built-in defaults when empty")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("hearth: %v", err)
	}
}
