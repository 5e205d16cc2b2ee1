package main

import (
	"github.com/Boren/ringoffire/config"
	"github.com/Boren/ringoffire/logger"
	"github.com/Boren/ringoffire/monitor"
	"github.com/Boren/ringoffire/server"
)

func main() {
	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize metrics endpoint
	mon := monitor.NewMonitor("ringoffire")
	mon.StartServer(cfg.Server.MetricsAddress)

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg.Server.HTTPAddress, cfg.Server.RPCAddress, cfg.Room.SyncInterval, mon)

	// Start Server
	logger.Log.Infof("Starting ring of fire server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
