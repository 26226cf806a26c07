package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ustadmustafa/TennisBetRecommender/internal/logic"
	"github.com/ustadmustafa/TennisBetRecommender/internal/worker"
)

// MaxBodySize limits the size of request bodies to 64KB
const MaxBodySize = 65536

// MaxBatchSize is the largest number of matchups accepted per batch request
const MaxBatchSize = 25

// BatchRunner defines the interface for the batch prediction worker pool
type BatchRunner interface {
	RunBatch(ctx context.Context, matchups []worker.Matchup) (*worker.BatchResult, error)
	QueueDepth() int
}

// BreakerReporter exposes the provider circuit breaker state
type BreakerReporter interface {
	BreakerState() string
}

// RedisPinger is the subset of *redis.Client used by the readiness check
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Analysis logic.AnalysisService
	Batch    BatchRunner
	Provider BreakerReporter
	// Redis is optional; leave nil when no cache is configured
	Redis  RedisPinger
	Logger *zap.Logger
}

type Handler struct {
	analysis  logic.AnalysisService
	batch     BatchRunner
	provider  BreakerReporter
	redis     RedisPinger
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		analysis:  cfg.Analysis,
		batch:     cfg.Batch,
		provider:  cfg.Provider,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
