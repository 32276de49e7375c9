package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/birthday"
	"github.com/GlebRadaev/brewpoints/internal/config"
	"github.com/GlebRadaev/brewpoints/internal/handlers"
	"github.com/GlebRadaev/brewpoints/internal/pg"
	"github.com/GlebRadaev/brewpoints/internal/repo"
	"github.com/GlebRadaev/brewpoints/internal/service"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
	"github.com/GlebRadaev/brewpoints/pkg/logger"
	"github.com/GlebRadaev/brewpoints/pkg/ratelimit"
)

const (
	shutdownTimeout        = 5 * time.Second
	limiterCleanupInterval = 10 * time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	birthday *birthday.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, jwtService, cfg.TokenTTL)

	if cfg.AdminEmail != "" {
		if err := a.srv.AuthService.EnsureAdmin(ctx, cfg.AdminEmail); err != nil {
			zap.L().Error("admin bootstrap failed", zap.String("email", cfg.AdminEmail), zap.Error(err))
			return fmt.Errorf("can't bootstrap admin: %w", err)
		}
	}

	a.birthday = birthday.New(a.repo.ProfileRepo, a.srv.ReferralService, cfg.BirthdayWorkers, cfg.BirthdaySchedule)
	if err := a.birthday.Start(ctx); err != nil {
		return fmt.Errorf("can't start birthday scheduler: %w", err)
	}

	authLimiter := ratelimit.New(cfg.AuthRateLimit, cfg.AuthRateBurst)
	authLimiter.StartCleanup(ctx, limiterCleanupInterval)

	a.api = handlers.New(a.srv, a.birthday, jwtService, authLimiter)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}

	return appErr
}
