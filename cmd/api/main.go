package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bryanwahyu/code-quality-ai/internal/application"
	appreview "github.com/bryanwahyu/code-quality-ai/internal/application/review"
	"github.com/bryanwahyu/code-quality-ai/internal/config"
	domain "github.com/bryanwahyu/code-quality-ai/internal/domain/review"
	aiclient "github.com/bryanwahyu/code-quality-ai/internal/infra/ai/openai"
	"github.com/bryanwahyu/code-quality-ai/internal/infra/httpserver"
)

func main() {
	// .env is optional; real deployments set vars in the environment
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init AI client; a missing key disables /analyze but the server still serves
	var completions domain.Completer
	if cfg.AI.APIKey != "" {
		completions = aiclient.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	} else {
		log.Println("warning: OPENROUTER_API_KEY not set, /analyze is disabled")
	}

	// init service
	svc := appreview.NewService(completions, application.SystemClock{})

	// init router
	mux := httpserver.NewRouter(svc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// three sequential upstream calls at 30s each must fit
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
