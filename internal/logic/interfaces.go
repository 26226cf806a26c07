package logic

import (
	"context"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// DataSource supplies raw provider payloads. Implementations never return
// an error directly; failures are carried in the Outcome.
type DataSource interface {
	FetchH2H(ctx context.Context, player1, player2 int64) models.Outcome[models.H2HData]
	FetchPlayer(ctx context.Context, playerKey int64) models.Outcome[models.PlayerInfo]
	FetchStandings(ctx context.Context, league string) models.Outcome[[]models.Standing]
}

// AnalysisService is the read API used by the handlers and the batch worker
type AnalysisService interface {
	GetMatchPredictions(ctx context.Context, player1, player2 int64) (*models.MatchBettingPredictions, error)
	AnalyzeH2H(ctx context.Context, player1, player2 int64) (*models.H2HSummary, error)
	AnalyzePlayer(ctx context.Context, playerKey int64) (*models.PlayerPerformanceProfile, error)
	AnalyzeMatch(ctx context.Context, player1, player2 int64) (*models.MatchAnalysis, error)
	GetPlayerAnalysis(ctx context.Context, playerKey int64) (*models.PlayerAnalysis, error)
}
