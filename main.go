package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"furniture-delivery/config"
	"furniture-delivery/roles"
	"furniture-delivery/system"
)

const configFile = "delivery.yaml"

func main() {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	admin := &roles.OfficeAdministrator{ID: 1, Name: "Central office"}
	sys := system.New(1, "Central office", admin, logger)

	path, err := sys.Run(cfg)
	if err != nil {
		logger.Fatal("overdue report failed", zap.Error(err))
	}
	logger.Info("done", zap.String("report", path))
}
