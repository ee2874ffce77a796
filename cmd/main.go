package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	apicontext "github.com/dtroode/staffhub-server/internal/api/http/context"
	"github.com/dtroode/staffhub-server/internal/api/http/router"
	httpserver "github.com/dtroode/staffhub-server/internal/api/http/server"
	"github.com/dtroode/staffhub-server/internal/config"
	"github.com/dtroode/staffhub-server/internal/logger"
	"github.com/dtroode/staffhub-server/internal/model"
	"github.com/dtroode/staffhub-server/internal/password"
	"github.com/dtroode/staffhub-server/internal/repository/memory"
	"github.com/dtroode/staffhub-server/internal/repository/postgres"
	"github.com/dtroode/staffhub-server/internal/server"
	"github.com/dtroode/staffhub-server/internal/service"
	storagemem "github.com/dtroode/staffhub-server/internal/storage/memory"
	storage "github.com/dtroode/staffhub-server/internal/storage/minio"
	"github.com/dtroode/staffhub-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// backend is the persistence selected by DATABASE_DRIVER.
type backend struct {
	identities model.IdentityStore
	posts      model.PostStore
	transactor model.Transactor
	storage    model.Storage
	checks     map[string]router.Pinger
	close      func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer func() {
		if err := b.close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), logger)
	hasher := password.NewBcrypt(cfg.Password.Cost)

	services := router.Services{
		Auth:    service.NewAuth(b.identities, b.transactor, hasher, tokenService, logger),
		Account: service.NewAccount(b.identities, b.storage, logger),
		Users:   service.NewUsers(b.identities, b.transactor, b.storage, logger),
		Posts:   service.NewPosts(b.posts, logger),
		Tokens:  tokenService,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.New(services, b.checks, apicontext.NewManager(), registry, router.Options{
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		MaxUploadBytes:     cfg.HTTP.MaxUploadBytes,
		ProtectAdminRoutes: cfg.HTTP.ProtectAdminRoutes,
	}, logger)

	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openBackend(ctx context.Context, cfg *config.Config) (backend, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		bucket := storagemem.NewBucket()
		return backend{
			identities: store.Identities(),
			posts:      store.Posts(),
			transactor: store,
			storage:    bucket,
			checks:     map[string]router.Pinger{"database": store, "storage": bucket},
			close:      store.Close,
		}, nil
	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
		if err != nil {
			return backend{}, err
		}

		minioClient, err := storage.Dial(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
		if err != nil {
			_ = db.Close()
			return backend{}, err
		}
		storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			_ = db.Close()
			return backend{}, fmt.Errorf("failed to initialize storage client: %w", err)
		}

		return backend{
			identities: postgres.NewIdentityRepository(db),
			posts:      postgres.NewPostRepository(db),
			transactor: postgres.NewTransactor(db),
			storage:    storageClient,
			checks:     map[string]router.Pinger{"database": db, "storage": storageClient},
			close:      db.Close,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
