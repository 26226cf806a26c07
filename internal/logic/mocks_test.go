package logic

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// MockDataSource implements DataSource for testing
type MockDataSource struct {
	FetchH2HFunc       func(ctx context.Context, player1, player2 int64) models.Outcome[models.H2HData]
	FetchPlayerFunc    func(ctx context.Context, playerKey int64) models.Outcome[models.PlayerInfo]
	FetchStandingsFunc func(ctx context.Context, league string) models.Outcome[[]models.Standing]

	calls atomic.Int32
}

func (m *MockDataSource) FetchH2H(ctx context.Context, player1, player2 int64) models.Outcome[models.H2HData] {
	m.calls.Add(1)
	if m.FetchH2HFunc != nil {
		return m.FetchH2HFunc(ctx, player1, player2)
	}
	return models.Empty[models.H2HData]()
}

func (m *MockDataSource) FetchPlayer(ctx context.Context, playerKey int64) models.Outcome[models.PlayerInfo] {
	m.calls.Add(1)
	if m.FetchPlayerFunc != nil {
		return m.FetchPlayerFunc(ctx, playerKey)
	}
	return models.Empty[models.PlayerInfo]()
}

func (m *MockDataSource) FetchStandings(ctx context.Context, league string) models.Outcome[[]models.Standing] {
	m.calls.Add(1)
	if m.FetchStandingsFunc != nil {
		return m.FetchStandingsFunc(ctx, league)
	}
	return models.Empty[[]models.Standing]()
}

var errUpstream = errors.New("upstream unavailable")

func finished(winner string) models.MatchRecord {
	return models.MatchRecord{
		FirstPlayer:  "Alice",
		SecondPlayer: "Bea",
		FinalResult:  "2 - 0",
		Winner:       winner,
		Status:       models.StatusFinished,
	}
}

func h2hRecords(p1Wins, p2Wins int) []models.MatchRecord {
	var out []models.MatchRecord
	for i := 0; i < p1Wins; i++ {
		out = append(out, finished(models.FirstPlayerSlot))
	}
	for i := 0; i < p2Wins; i++ {
		out = append(out, finished(models.SecondPlayerSlot))
	}
	return out
}

func seasonStat(season string, won, lost int) models.SeasonStat {
	return models.SeasonStat{
		Season:      season,
		Type:        "singles",
		MatchesWon:  strconv.Itoa(won),
		MatchesLost: strconv.Itoa(lost),
	}
}

func intPtr(n int) *int { return &n }
