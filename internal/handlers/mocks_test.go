package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
	"github.com/ustadmustafa/TennisBetRecommender/internal/worker"
)

// MockAnalysisService
type MockAnalysisService struct {
	GetMatchPredictionsFunc func(ctx context.Context, p1, p2 int64) (*models.MatchBettingPredictions, error)
	AnalyzeH2HFunc          func(ctx context.Context, p1, p2 int64) (*models.H2HSummary, error)
	AnalyzePlayerFunc       func(ctx context.Context, key int64) (*models.PlayerPerformanceProfile, error)
	AnalyzeMatchFunc        func(ctx context.Context, p1, p2 int64) (*models.MatchAnalysis, error)
	GetPlayerAnalysisFunc   func(ctx context.Context, key int64) (*models.PlayerAnalysis, error)
}

func (m *MockAnalysisService) GetMatchPredictions(ctx context.Context, p1, p2 int64) (*models.MatchBettingPredictions, error) {
	if m.GetMatchPredictionsFunc != nil {
		return m.GetMatchPredictionsFunc(ctx, p1, p2)
	}
	return &models.MatchBettingPredictions{Player1Key: p1, Player2Key: p2}, nil
}

func (m *MockAnalysisService) AnalyzeH2H(ctx context.Context, p1, p2 int64) (*models.H2HSummary, error) {
	if m.AnalyzeH2HFunc != nil {
		return m.AnalyzeH2HFunc(ctx, p1, p2)
	}
	return &models.H2HSummary{}, nil
}

func (m *MockAnalysisService) AnalyzePlayer(ctx context.Context, key int64) (*models.PlayerPerformanceProfile, error) {
	if m.AnalyzePlayerFunc != nil {
		return m.AnalyzePlayerFunc(ctx, key)
	}
	return &models.PlayerPerformanceProfile{PlayerKey: key}, nil
}

func (m *MockAnalysisService) AnalyzeMatch(ctx context.Context, p1, p2 int64) (*models.MatchAnalysis, error) {
	if m.AnalyzeMatchFunc != nil {
		return m.AnalyzeMatchFunc(ctx, p1, p2)
	}
	return &models.MatchAnalysis{}, nil
}

func (m *MockAnalysisService) GetPlayerAnalysis(ctx context.Context, key int64) (*models.PlayerAnalysis, error) {
	if m.GetPlayerAnalysisFunc != nil {
		return m.GetPlayerAnalysisFunc(ctx, key)
	}
	return &models.PlayerAnalysis{PlayerKey: key}, nil
}

// MockBatchRunner
type MockBatchRunner struct {
	RunBatchFunc func(ctx context.Context, matchups []worker.Matchup) (*worker.BatchResult, error)
	Depth        int
}

func (m *MockBatchRunner) RunBatch(ctx context.Context, matchups []worker.Matchup) (*worker.BatchResult, error) {
	if m.RunBatchFunc != nil {
		return m.RunBatchFunc(ctx, matchups)
	}
	out := &worker.BatchResult{BatchID: "batch-1"}
	for i, mu := range matchups {
		out.Results = append(out.Results, worker.Result{Index: i, Player1: mu.Player1, Player2: mu.Player2})
	}
	return out, nil
}

func (m *MockBatchRunner) QueueDepth() int { return m.Depth }

// MockBreaker
type MockBreaker struct {
	State string
}

func (m *MockBreaker) BreakerState() string { return m.State }

// MockRedis
type MockRedis struct {
	Err error
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.Err)
}
