// Command movemock runs the in-memory mock marketplace backend. It exists
// for local development of movectl and for manual poking; integration tests
// boot the same router in-process instead.
//
// Usage:
//
//	movemock -port 8080
//
// JWT_SECRET overrides the demo signing secret. State is ephemeral: every
// restart reseeds the demo catalog and drops all accounts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/movehub/marketplace-client/internal/mockapi"
	"github.com/movehub/marketplace-client/pkg/logger"
)

func main() {
	port := flag.Int("port", 8080, "listen port")
	logLevel := flag.String("log-level", "info", "minimum log level")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.Init(logger.Options{Level: *logLevel, Pretty: true})

	e := mockapi.New(mockapi.Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		Metrics:   true,
	}, log)

	addr := fmt.Sprintf(":%d", *port)
	log.Info().Str("addr", addr).Msg("mock marketplace backend listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
