package main

import (
	"net/http"
	"os"
	"time"

	"med-tracker/internal/adapters/auth/remote"
	"med-tracker/internal/adapters/auth/static"
	"med-tracker/internal/platform/logger"
	"med-tracker/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := router.Options{Logger: log}

	// Con IAM remoto configurado, las sesiones las emite otro servicio.
	// Si no, el store local: credenciales bcrypt sembradas desde DEV_USERS.
	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := remote.NewClient(remote.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			log.Error("invalid auth config", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.Verifier = remote.NewVerifier(client)
	} else {
		sessions := static.New()
		if n := sessions.SeedFromEnv(); n > 0 {
			log.Info("dev users registered", map[string]any{"count": n})
		}
		opts.Sessions = sessions
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
