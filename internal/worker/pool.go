// Package worker implements the buffered worker pool used for batch predictions.
// HTTP handlers submit matchups and wait on a per-batch results channel:
// - Backpressure handling via load shedding
// - A bounded number of concurrent provider-bound analyses
// - Graceful shutdown that drains queued jobs

package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// Prometheus metrics
var (
	jobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_batch_jobs_submitted_total",
		Help: "Total number of prediction jobs accepted by the pool",
	})

	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_batch_jobs_processed_total",
		Help: "Total number of prediction jobs completed by workers",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_batch_jobs_failed_total",
		Help: "Total number of prediction jobs that returned an error",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tennis_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tennis_batch_job_duration_seconds",
		Help:    "Duration of a single batch prediction job",
		Buckets: prometheus.DefBuckets,
	})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tennis_batch_jobs_load_shed_total",
		Help: "Total number of prediction jobs dropped due to load shedding",
	})
)

var (
	// ErrQueueFull is returned when a batch does not fit in the queue
	ErrQueueFull = errors.New("worker queue full")
	// ErrPoolStopped is returned when submitting to a stopped pool
	ErrPoolStopped = errors.New("worker pool stopped")
)

// Predictor produces the prediction set for one matchup
type Predictor interface {
	GetMatchPredictions(ctx context.Context, player1, player2 int64) (*models.MatchBettingPredictions, error)
}

// Matchup is one pair to predict
type Matchup struct {
	Player1 int64 `json:"player1" validate:"required,gt=0"`
	Player2 int64 `json:"player2" validate:"required,gt=0,nefield=Player1"`
}

// Job represents a unit of work for the worker pool
type Job struct {
	BatchID   string
	Index     int
	Matchup   Matchup
	Ctx       context.Context
	Results   chan<- Result
	Timestamp time.Time
}

// Result is the outcome of one job
type Result struct {
	Index       int                             `json:"index"`
	Player1     int64                           `json:"player1"`
	Player2     int64                           `json:"player2"`
	Predictions *models.MatchBettingPredictions `json:"predictions,omitempty"`
	Error       string                          `json:"error,omitempty"`
}

// BatchResult collects every result of a batch in submission order
type BatchResult struct {
	BatchID string   `json:"batch_id"`
	Results []Result `json:"results"`
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	JobTimeout  time.Duration
	Predictor   Predictor
	Logger      *zap.Logger
}

// Pool manages a pool of workers for batch predictions
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	// Start queue depth reporter
	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop gracefully shuts down the worker pool. Queued jobs are still processed.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Worker pool stopped")
}

// Submit adds a job to the queue without blocking. Returns false when the
// queue is full or the pool is stopped.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	if job.Timestamp.IsZero() {
		job.Timestamp = time.Now()
	}

	select {
	case p.jobQueue <- job:
		jobsSubmitted.Inc()
		return true
	default:
		jobsLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// RunBatch submits every matchup and waits for all results or ctx. A batch
// that does not fit in the queue is rejected as a whole; jobs already queued
// for it are abandoned and their results discarded.
func (p *Pool) RunBatch(ctx context.Context, matchups []Matchup) (*BatchResult, error) {
	batchID := uuid.New().String()
	batchCtx, cancel := context.WithCancel(ctx)

	// Buffered so workers never block on an abandoned batch
	results := make(chan Result, len(matchups))

	for i, m := range matchups {
		job := Job{
			BatchID: batchID,
			Index:   i,
			Matchup: m,
			Ctx:     batchCtx,
			Results: results,
		}
		if !p.Submit(job) {
			cancel()
			p.mu.RLock()
			stopped := p.stopped
			p.mu.RUnlock()
			if stopped {
				return nil, ErrPoolStopped
			}
			p.logger.Warnw("Batch shed", "batchId", batchID, "size", len(matchups), "queueDepth", p.QueueDepth())
			return nil, fmt.Errorf("batch %s: %w", batchID, ErrQueueFull)
		}
	}
	defer cancel()

	out := &BatchResult{BatchID: batchID, Results: make([]Result, len(matchups))}
	for received := 0; received < len(matchups); received++ {
		select {
		case r := <-results:
			out.Results[r.Index] = r
		case <-ctx.Done():
			return nil, fmt.Errorf("batch %s: %w", batchID, ctx.Err())
		}
	}

	p.logger.Infow("Batch completed", "batchId", batchID, "size", len(matchups))
	return out, nil
}

// worker processes jobs from the queue until it is closed
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		p.process(id, job)
	}
}

func (p *Pool) process(id int, job Job) {
	result := Result{
		Index:   job.Index,
		Player1: job.Matchup.Player1,
		Player2: job.Matchup.Player2,
	}

	parent := job.Ctx
	if parent == nil {
		parent = context.Background()
	}

	if err := parent.Err(); err != nil {
		result.Error = err.Error()
		p.deliver(job, result)
		return
	}

	ctx, cancel := context.WithTimeout(parent, p.config.JobTimeout)
	defer cancel()

	start := time.Now()
	preds, err := p.config.Predictor.GetMatchPredictions(ctx, job.Matchup.Player1, job.Matchup.Player2)
	jobDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		p.logger.Errorw("Batch job failed",
			"worker", id,
			"batchId", job.BatchID,
			"player1", job.Matchup.Player1,
			"player2", job.Matchup.Player2,
			"error", err,
		)
		jobsFailed.Inc()
		result.Error = err.Error()
	} else {
		jobsProcessed.Inc()
		result.Predictions = preds
	}

	p.deliver(job, result)
}

func (p *Pool) deliver(job Job, result Result) {
	if job.Results == nil {
		return
	}
	select {
	case job.Results <- result:
	default:
		p.logger.Warnw("Dropping result for full results channel", "batchId", job.BatchID, "index", job.Index)
	}
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
