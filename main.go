package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vip25/site/app"
	"github.com/vip25/site/config"
	"github.com/vip25/site/log"
	"github.com/vip25/site/routes"
	"github.com/vip25/site/session"
	"github.com/vip25/site/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	sessions, err := session.New(cfg.SecretKey, cfg.SecureCookies)
	if err != nil {
		log.Fatal("main.session:", err)
	}

	// A single bounded connection attempt. If it fails the site still
	// serves pages; intake and admin reads degrade as designed.
	st, err := store.Connect(context.Background(), cfg)
	if err != nil {
		log.Warn("main.store: running without database:", err)
		st = store.Unavailable()
	}

	app := app.App{
		Store:   st,
		Manager: sessions,
		Config:  cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
