//go:build js && wasm

// Command wasm is the browser controller of the catalog pages. Build with
//
//	GOOS=js GOARCH=wasm go build -o web/wasm/app.wasm ./cmd/wasm
package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/internal/api"
	"catalog/internal/jsdom"
	"catalog/internal/ui"
)

func main() {
	// console.log/console.error receive stdout/stderr through wasm_exec.js
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	client := api.NewClient(jsdom.Origin())

	page, err := ui.Mount(ctx, jsdom.New(), client, logger)
	if err != nil {
		logger.Error("failed to mount page", "error", err)
		return
	}

	page.Start(ctx)

	// keep the event listeners alive
	select {}
}
