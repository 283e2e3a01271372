// README: Stand-in weather backend entry point (default port 3001).
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

	addr := os.Getenv("WEATHER_SERVER_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	zlog.Info("weather backend listening", zap.String("addr", addr))
	if err := mock.NewWeatherServer(zlog).Router().Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
