package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/AkifumiSato/at-api/cmd/app"
	"github.com/AkifumiSato/at-api/internal/config"
	handlers "github.com/AkifumiSato/at-api/internal/handler"
	"github.com/AkifumiSato/at-api/internal/middleware"
)

func main() {
	if err := run(config.LoadConfig()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// run serves the API until the listener fails. The store is closed before
// it returns.
func run(cfg *config.Config) error {
	if cfg.APIKey == "" {
		log.Println("Warning: X_API_KEY is not set, requests are not authenticated")
	}

	db, _, services, err := app.App(cfg)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer app.Close(db)

	handler := handlers.NewHandlers(services, cfg)

	handlerChain := middleware.Chain(
		handlers.NewRouter(handler),
		middleware.APIKeyMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("listening on %s (storage: %s)", addr, cfg.Storage)

	return http.ListenAndServe(addr, handlerChain)
}
