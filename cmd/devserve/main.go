package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Kush-Singh-26/devserve/internal/server"
)

func main() {
	root, err := os.Getwd()
	if err != nil {
		slog.Error("Failed to resolve working directory", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(server.DefaultConfig(root))
	if err != nil {
		slog.Error("Failed to configure server", "error", err)
		os.Exit(1)
	}

	if err := srv.ListenAndServe(context.Background()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
