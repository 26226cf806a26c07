package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

func TestSubmitFull(t *testing.T) {
	// Create a pool without starting workers so the queue stays full
	pool := NewPool(PoolConfig{
		QueueSize: 1,
		Predictor: &MockPredictor{},
		Logger:    zap.NewNop(),
	})

	if !pool.Submit(Job{Matchup: Matchup{Player1: 1, Player2: 2}}) {
		t.Fatal("Failed to submit first job")
	}

	start := time.Now()
	submitted := pool.Submit(Job{Matchup: Matchup{Player1: 3, Player2: 4}})
	duration := time.Since(start)

	if submitted {
		t.Error("Submit should have returned false when queue is full")
	}
	if duration > 10*time.Millisecond {
		t.Errorf("Submit took too long (%v), expected immediate return", duration)
	}
	if pool.QueueDepth() != 1 {
		t.Errorf("QueueDepth = %d, want 1", pool.QueueDepth())
	}
}

func TestRunBatch(t *testing.T) {
	predictor := &MockPredictor{}
	pool := NewPool(PoolConfig{WorkerCount: 3, QueueSize: 10, Predictor: predictor, Logger: zap.NewNop()})
	pool.Start(context.Background())
	defer pool.Stop()

	matchups := []Matchup{{Player1: 1, Player2: 2}, {Player1: 3, Player2: 4}, {Player1: 5, Player2: 6}, {Player1: 7, Player2: 8}}

	got, err := pool.RunBatch(context.Background(), matchups)
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if got.BatchID == "" {
		t.Error("BatchID is empty")
	}
	if len(got.Results) != len(matchups) {
		t.Fatalf("len(Results) = %d, want %d", len(got.Results), len(matchups))
	}
	for i, r := range got.Results {
		if r.Index != i || r.Player1 != matchups[i].Player1 {
			t.Errorf("result %d out of order: %+v", i, r)
		}
		if r.Predictions == nil || r.Predictions.Player2Key != matchups[i].Player2 {
			t.Errorf("result %d predictions = %+v", i, r.Predictions)
		}
	}
	if calls := predictor.calls.Load(); calls != 4 {
		t.Errorf("predictor calls = %d, want 4", calls)
	}
}

func TestRunBatch_JobErrorsAreReported(t *testing.T) {
	predictor := &MockPredictor{
		GetMatchPredictionsFunc: func(ctx context.Context, p1, p2 int64) (*models.MatchBettingPredictions, error) {
			if p1 == 3 {
				return nil, errors.New("contract violated")
			}
			return &models.MatchBettingPredictions{}, nil
		},
	}
	pool := NewPool(PoolConfig{WorkerCount: 2, QueueSize: 10, Predictor: predictor, Logger: zap.NewNop()})
	pool.Start(context.Background())
	defer pool.Stop()

	got, err := pool.RunBatch(context.Background(), []Matchup{{Player1: 1, Player2: 2}, {Player1: 3, Player2: 4}})
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if got.Results[0].Error != "" || got.Results[1].Error == "" {
		t.Errorf("results = %+v", got.Results)
	}
}

func TestRunBatch_ShedsOversizedBatch(t *testing.T) {
	pool := NewPool(PoolConfig{QueueSize: 2, Predictor: &MockPredictor{}, Logger: zap.NewNop()})

	_, err := pool.RunBatch(context.Background(), []Matchup{{Player1: 1, Player2: 2}, {Player1: 3, Player2: 4}, {Player1: 5, Player2: 6}})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("RunBatch() error = %v, want ErrQueueFull", err)
	}
}

func TestRunBatch_ContextCanceled(t *testing.T) {
	block := make(chan struct{})
	predictor := &MockPredictor{
		GetMatchPredictionsFunc: func(ctx context.Context, p1, p2 int64) (*models.MatchBettingPredictions, error) {
			<-block
			return nil, errors.New("released")
		},
	}
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 5, Predictor: predictor, Logger: zap.NewNop()})
	pool.Start(context.Background())
	defer pool.Stop()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := pool.RunBatch(ctx, []Matchup{{Player1: 1, Player2: 2}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunBatch() error = %v, want deadline exceeded", err)
	}
}

func TestStop_DrainsQueueAndRejectsNewJobs(t *testing.T) {
	predictor := &MockPredictor{}
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 10, Predictor: predictor, Logger: zap.NewNop()})

	results := make(chan Result, 3)
	for i := 0; i < 3; i++ {
		if !pool.Submit(Job{Index: i, Matchup: Matchup{Player1: 1, Player2: 2}, Results: results}) {
			t.Fatalf("Submit %d failed", i)
		}
	}

	pool.Start(context.Background())
	pool.Stop()

	if len(results) != 3 {
		t.Errorf("drained results = %d, want 3", len(results))
	}
	if pool.Submit(Job{}) {
		t.Error("Submit after Stop should return false")
	}
	if _, err := pool.RunBatch(context.Background(), []Matchup{{Player1: 1, Player2: 2}}); !errors.Is(err, ErrPoolStopped) {
		t.Errorf("RunBatch after Stop error = %v, want ErrPoolStopped", err)
	}

	// Stop is idempotent
	pool.Stop()
}
