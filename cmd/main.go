package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpctx "github.com/hyeonju-dev/auth-server/internal/api/http/context"
	"github.com/hyeonju-dev/auth-server/internal/api/http/router"
	httpServer "github.com/hyeonju-dev/auth-server/internal/api/http/server"
	"github.com/hyeonju-dev/auth-server/internal/config"
	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/password"
	"github.com/hyeonju-dev/auth-server/internal/repository/postgres"
	"github.com/hyeonju-dev/auth-server/internal/server"
	"github.com/hyeonju-dev/auth-server/internal/service"
	"github.com/hyeonju-dev/auth-server/internal/session"
	"github.com/hyeonju-dev/auth-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	defer rdb.Close()

	signingKey, err := base64.StdEncoding.DecodeString(cfg.JWT.Secret)
	if err != nil {
		logger.Fatal("failed to decode jwt secret", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	sessionStore := session.NewStore(rdb)
	codec := token.NewCodec(signingKey)
	hasher := password.NewBcrypt(0)

	authService := service.NewAuth(userRepo, sessionStore, codec, hasher, cfg.Session.AtomicRotate, logger)
	signupService := service.NewSignup(userRepo, hasher, cfg.Signup.AdminToken, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, signupService, codec, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
