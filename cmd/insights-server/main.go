// README: Stand-in travel insights backend entry point (default port 3002).
package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"travelsmart/internal/mock"
)

func main() {
	zlog, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	addr := os.Getenv("INSIGHTS_SERVER_ADDR")
	if addr == "" {
		addr = ":3002"
	}

	zlog.Info("insights backend listening", zap.String("addr", addr))
	if err := mock.NewInsightsServer(zlog).Router().Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
