package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/httpapi"
	memaccountrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/accountrepo"
	memactivitylog "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/activitylog"
	membillrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/billrepo"
	memdietplanrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/dietplanrepo"
	memmemberrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/memberrepo"
	memnotificationrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/notificationrepo"
	mempackagerepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/packagerepo"
	memsupplementrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/supplementrepo"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres"
	pgaccountrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/accountrepo"
	pgactivitylog "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/activitylog"
	pgbillrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/billrepo"
	pgdietplanrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/dietplanrepo"
	pgmemberrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/memberrepo"
	pgnotificationrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/notificationrepo"
	pgpackagerepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/packagerepo"
	pgsupplementrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/supplementrepo"
	"github.com/ironhaven-fitness/gym-api/internal/app/auth"
	"github.com/ironhaven-fitness/gym-api/internal/app/billing"
	"github.com/ironhaven-fitness/gym-api/internal/app/catalog"
	"github.com/ironhaven-fitness/gym-api/internal/app/members"
	"github.com/ironhaven-fitness/gym-api/internal/app/notices"
	platformclock "github.com/ironhaven-fitness/gym-api/internal/platform/clock"
	"github.com/ironhaven-fitness/gym-api/internal/platform/config"
	"github.com/ironhaven-fitness/gym-api/internal/platform/observability"
	"github.com/ironhaven-fitness/gym-api/internal/platform/seed"
	"github.com/ironhaven-fitness/gym-api/internal/platform/token"
	accountrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
	activitylogport "github.com/ironhaven-fitness/gym-api/internal/ports/out/activitylog"
	billrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
	dietplanrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
	memberrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
	notificationrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
	packagerepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
	supplementrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	clk := platformclock.NewSystemClock()

	var (
		accountRepo      accountrepoport.Repository
		memberRepo       memberrepoport.Repository
		auditLog         activitylogport.Log
		packageRepo      packagerepoport.Repository
		billRepo         billrepoport.Repository
		supplementRepo   supplementrepoport.Repository
		dietPlanRepo     dietplanrepoport.Repository
		notificationRepo notificationrepoport.Repository
		cleanup          func()
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			logger.Error("postgres connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cleanup = pool.Close

		if err := postgres.Migrate(context.Background(), pool); err != nil {
			logger.Error("schema migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		accountRepo = pgaccountrepo.NewRepo(pool)
		memberRepo = pgmemberrepo.NewRepo(pool)
		auditLog = pgactivitylog.NewLog(pool)
		packageRepo = pgpackagerepo.NewRepo(pool)
		billRepo = pgbillrepo.NewRepo(pool)
		supplementRepo = pgsupplementrepo.NewRepo(pool)
		dietPlanRepo = pgdietplanrepo.NewRepo(pool)
		notificationRepo = pgnotificationrepo.NewRepo(pool)
	default:
		accountRepo = memaccountrepo.NewRepo()
		memberRepo = memmemberrepo.NewRepo()
		auditLog = memactivitylog.NewLog()
		packageRepo = mempackagerepo.NewRepo()
		billRepo = membillrepo.NewRepo()
		supplementRepo = memsupplementrepo.NewRepo()
		dietPlanRepo = memdietplanrepo.NewRepo()
		notificationRepo = memnotificationrepo.NewRepo()
	}

	if cleanup != nil {
		defer cleanup()
	}

	if cfg.SeedData {
		seeder := &seed.Seeder{
			Accounts:    accountRepo,
			Members:     memberRepo,
			Packages:    packageRepo,
			Supplements: supplementRepo,
			DietPlans:   dietPlanRepo,
			Clock:       clk,
			Logger:      logger,
		}
		if err := seeder.Run(context.Background()); err != nil {
			logger.Error("seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	tokens := token.NewIssuer(token.Config{
		Secret: cfg.TokenSecret,
		Issuer: cfg.TokenIssuer,
		TTL:    cfg.TokenTTL,
	})
	audit := auth.NewRecorder(auditLog, clk, logger)

	api := &httpapi.Server{
		Auth:    auth.NewService(accountRepo, memberRepo, audit, tokens, clk),
		Members: members.NewService(memberRepo, packageRepo, clk),
		Billing: billing.NewService(billRepo, memberRepo, clk),
		Catalog: catalog.NewService(packageRepo, supplementRepo, dietPlanRepo, clk),
		Notices: notices.NewService(notificationRepo, clk),
		Audit:   auditLog,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: httpapi.NewRouter(api),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening",
			slog.String("addr", cfg.HTTPAddress),
			slog.String("storage", cfg.StorageBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
