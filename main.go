package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/lost-woods/uniform/src/rng"
	"github.com/lost-woods/uniform/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	source, health, err := rng.NewSourceFromEnv()
	if err != nil {
		log.Fatalf("failed to open RNG source: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "777"
	}

	server.New(port, source, health, log).RunOrDie()
}
