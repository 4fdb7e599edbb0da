package main

import (
	"log"
	"os"

	"TaskBoard/Config"
	"TaskBoard/CronJobs"
	"TaskBoard/FiberConfig"
	"TaskBoard/Models"
)

func main() {
	cfg, err := Config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.LogToFile {
		setupLogging()
	}

	db, err := Models.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	store := Models.NewSnapshotStore(db)

	// Sweep snapshots of expired sessions
	sweeper := CronJobs.NewSnapshotSweeper(store, cfg.SessionTTL)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		log.Fatal("Failed to start snapshot sweeper:", err)
	}
	defer sweeper.Stop()

	// Setup routes
	if err := FiberConfig.FiberConfig(cfg, store); err != nil {
		log.Println("Server error:", err)
	}
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	// Set up main application log file
	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	// Redirect log output to the file
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
