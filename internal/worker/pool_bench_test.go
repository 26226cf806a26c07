package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func BenchmarkRunBatch(b *testing.B) {
	pool := NewPool(PoolConfig{
		WorkerCount: 4,
		QueueSize:   100,
		Predictor:   &MockPredictor{},
		Logger:      zap.NewNop(),
	})
	pool.Start(context.Background())
	defer pool.Stop()

	matchups := make([]Matchup, 25)
	for i := range matchups {
		matchups[i] = Matchup{Player1: int64(i + 1), Player2: int64(i + 100)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.RunBatch(context.Background(), matchups); err != nil {
			b.Fatal(err)
		}
	}
}
