// main.go - Entry point and dependency injection
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sstent/ftracker-go/internal/report"
	"github.com/sstent/ftracker-go/internal/sensor"
	"github.com/sstent/ftracker-go/internal/training"
)

// Config holds the environment-driven settings (FTRACKER_ prefix).
type Config struct {
	PacketsFile string `envconfig:"PACKETS_FILE"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("ftracker", &cfg); err != nil {
		log.Fatal(err)
	}

	packets, err := loadPackets(cfg, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	reporter := report.New(os.Stdout)

	failed := 0
	for _, p := range packets {
		t, err := training.New(p.WorkoutType, p.Data)
		if err != nil {
			log.Printf("Skipping packet %s: %v", p.WorkoutType, err)
			failed++
			continue
		}
		if err := reporter.Report(t); err != nil {
			log.Printf("Failed to report %s training: %v", p.WorkoutType, err)
			failed++
		}
	}

	// Processed packets have been reported; a non-zero exit still flags
	// that some packets were rejected.
	if failed > 0 {
		os.Exit(1)
	}
}

// loadPackets picks the input source: command-line packets first, then the
// configured packets file, then the built-in demo readings.
func loadPackets(cfg Config, args []string) ([]sensor.Packet, error) {
	if len(args) > 0 {
		return sensor.ParseArgs(args)
	}
	if cfg.PacketsFile != "" {
		return sensor.LoadFile(cfg.PacketsFile)
	}
	return sensor.DefaultPackets(), nil
}
