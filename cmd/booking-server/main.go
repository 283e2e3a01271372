// README: Stand-in booking backend entry point (default port 3003).
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

	addr := os.Getenv("BOOKING_SERVER_ADDR")
	if addr == "" {
		addr = ":3003"
	}

	zlog.Info("booking backend listening", zap.String("addr", addr))
	if err := mock.NewBookingServer(zlog).Router().Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
