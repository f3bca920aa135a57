package main

import (
	"context"
	"log/slog"
	"os"

	"driver_service/internal/config"
	"driver_service/internal/models"
	"driver_service/internal/storage/mongo"
)

// Drops the users and applications collections and seeds an admin user.
// Intended for local development only.
func main() {
	cfg := config.MustLoad("./config/config.yaml")

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := context.Background()

	storage, err := mongo.New(ctx, cfg)
	if err != nil {
		log.Error("failed to connect mongo", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer storage.Close(ctx)

	if err := storage.DropCollections(ctx); err != nil {
		log.Error("failed to drop collections", slog.String("err", err.Error()))
		os.Exit(1)
	}

	admin := models.User{
		Email:    "spacex.admin@gmail.com",
		FullName: "Admin User",
		Phone:    "555-1234",
	}

	if err := admin.SetPassword("adminpass"); err != nil {
		log.Error("failed to hash password", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if _, err := storage.SaveUser(ctx, admin); err != nil {
		log.Error("failed to seed admin user", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("Fixture data has been successfully set up")
}
