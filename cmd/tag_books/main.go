package main

import (
	"context"
	"os"

	"readme-be/internal/bootstrap"
	"readme-be/internal/config"
	"readme-be/pkg/database"

	"github.com/fatih/color"
)

// Manual trigger for the tagging batch, same work the nightly schedule runs.
func main() {
	color.Cyan("🏷️  Running Book Tagging Batch\n")

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	res, err := container.TaggingService.RunBatch(context.Background())
	if err != nil {
		color.Red("Batch failed: %v", err)
		os.Exit(1)
	}

	color.Green("Batch finished")
	color.Yellow("  Processed: %d", res.Processed)
	color.Yellow("  Tagged:    %d", res.Tagged)
	color.Yellow("  Skipped:   %d", res.Skipped)
}
