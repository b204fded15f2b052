package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authremote "boi-na-nuvem/internal/adapters/auth/remote"
	pg "boi-na-nuvem/internal/adapters/storage/postgres"
	tsfile "boi-na-nuvem/internal/adapters/tokenstore/file"
	tsmem "boi-na-nuvem/internal/adapters/tokenstore/memory"
	tssqlite "boi-na-nuvem/internal/adapters/tokenstore/sqlite"
	"boi-na-nuvem/internal/config"
	"boi-na-nuvem/internal/domain/plans"
	"boi-na-nuvem/internal/platform/httpclient"
	"boi-na-nuvem/internal/platform/idgen"
	"boi-na-nuvem/internal/platform/logger"
	"boi-na-nuvem/internal/ports/auth"
	"boi-na-nuvem/internal/ports/tokenstore"
	"boi-na-nuvem/internal/router"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title Boi na Nuvem API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	upstream, err := httpclient.New(httpclient.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
	})
	if err != nil {
		return err
	}

	tokens, closeTokens, err := openTokenStore(cfg.TokenStore)
	if err != nil {
		return err
	}
	defer func() { _ = closeTokens() }()
	if cfg.APIToken != "" {
		if err := tokens.Set(context.Background(), tokenstore.KeyToken, cfg.APIToken); err != nil {
			return err
		}
	}

	ids := idgen.New()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx, db, log); err != nil {
			return err
		}
		n, err := pg.MaxSequence(ctx, db)
		if err != nil {
			return err
		}
		ids.Advance(n)
	} else {
		log.Info("DB_DSN not set, using in-memory repositories")
	}

	var verifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)
	if cfg.Auth.Enabled {
		verifier = authremote.NewVerifier(upstream, cfg.Auth.APIKey)
	} else {
		log.Warn("auth verification disabled, X-Debug-User-ID accepted")
	}

	plansSvc := plans.NewService(upstream, tokens, plans.Options{
		Logger:     log,
		Registerer: reg,
	})

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Plans:        plansSvc,
		IDs:          ids,
		Logger:       log,
		Registry:     reg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.APITimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("api_base_url", cfg.APIBaseURL),
			zap.String("token_store", cfg.TokenStore.Kind),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// openTokenStore elige el backend del token según TOKEN_STORE.
func openTokenStore(cfg config.TokenStoreConfig) (tokenstore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Kind {
	case "file":
		s, err := tsfile.NewStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "sqlite":
		s, err := tssqlite.Open(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return tsmem.NewStore(), noop, nil
	}
}
