// Package repository resolves which record-store backend serves the
// domain repositories. The choice is made once at startup from
// configuration; everything above this package is storage-agnostic.
package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/config"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/database"
	gormrepo "github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/repository"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/repository/memory"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/repository/redisstore"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// Stores bundles one repository per record type, all backed by the
// same storage backend.
type Stores struct {
	Companies        company.Repository
	Subscriptions    subscription.Repository
	AdminActions     subscription.AdminActionRepository
	TermsAcceptances subscription.TermsAcceptanceRepository

	// Redis is non-nil only for the redis backend. Shared-state
	// middleware (rate limiting) uses it when available.
	Redis *redis.Client
}

// NewStores builds the repository set for the configured backend. The
// caller owns database/redis lifecycle via the respective packages.
func NewStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	backend := cfg.Storage.Backend
	if backend == "" {
		backend = "memory"
	}

	switch backend {
	case "memory":
		logger.Info("using in-memory record store")
		return &Stores{
			Companies:        memory.NewCompanyRepository(),
			Subscriptions:    memory.NewSubscriptionRepository(),
			AdminActions:     memory.NewAdminActionRepository(),
			TermsAcceptances: memory.NewTermsAcceptanceRepository(),
		}, nil

	case "sqlite", "mysql":
		if err := database.Init(backend, &cfg.Database); err != nil {
			return nil, err
		}
		db := database.Get()
		return &Stores{
			Companies:        gormrepo.NewGormCompanyRepository(db),
			Subscriptions:    gormrepo.NewGormSubscriptionRepository(db),
			AdminActions:     gormrepo.NewGormAdminActionRepository(db),
			TermsAcceptances: gormrepo.NewGormTermsAcceptanceRepository(db),
		}, nil

	case "redis":
		client, err := redisstore.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis record store", "addr", cfg.Redis.GetAddr())
		return &Stores{
			Companies:        redisstore.NewCompanyRepository(client),
			Subscriptions:    redisstore.NewSubscriptionRepository(client),
			AdminActions:     redisstore.NewAdminActionRepository(client),
			TermsAcceptances: redisstore.NewTermsAcceptanceRepository(client),
			Redis:            client,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
