package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/es-debug/baekjoon-go/internal/application/solve"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := solve.Start(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error(fmt.Sprintf("solve.Start(): %s", err))
		os.Exit(1)
	}
}
