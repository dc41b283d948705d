package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/payguard/payguard/internal/pkg/database"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/internal/pkg/retry"
)

// PolicyRepo persists the spending policy in PostgreSQL with a
// read-through Redis cache
type PolicyRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	retrier     *retry.Retrier
}

// NewPolicyRepo creates a new policy repository
func NewPolicyRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PolicyRepo {
	return &PolicyRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		retrier:     retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}

// ActivityRepo persists the append-only activity ledger in PostgreSQL
type ActivityRepo struct {
	db      *sqlx.DB
	retrier *retry.Retrier
}

// NewActivityRepo creates a new activity repository
func NewActivityRepo(db *sqlx.DB) *ActivityRepo {
	return &ActivityRepo{
		db:      db,
		retrier: retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}
