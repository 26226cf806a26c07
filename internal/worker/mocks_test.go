package worker

import (
	"context"
	"sync/atomic"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// MockPredictor implements Predictor for testing
type MockPredictor struct {
	GetMatchPredictionsFunc func(ctx context.Context, player1, player2 int64) (*models.MatchBettingPredictions, error)
	calls                   atomic.Int32
}

func (m *MockPredictor) GetMatchPredictions(ctx context.Context, player1, player2 int64) (*models.MatchBettingPredictions, error) {
	m.calls.Add(1)
	if m.GetMatchPredictionsFunc != nil {
		return m.GetMatchPredictionsFunc(ctx, player1, player2)
	}
	return &models.MatchBettingPredictions{Player1Key: player1, Player2Key: player2}, nil
}
