package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

var (
	predictionsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tennis_predictions_generated_total",
		Help: "Predictions generated by bet type and recommendation tier",
	}, []string{"bet_type", "recommendation"})

	analysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tennis_analysis_duration_seconds",
		Help:    "Duration of analysis operations including provider fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	degradedSources = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tennis_analysis_degraded_sources_total",
		Help: "Data sources that were empty or failed during analysis",
	}, []string{"source", "status"})
)

// ServiceConfig wires the analysis service
type ServiceConfig struct {
	Source DataSource
	Logger *zap.Logger
	// Now is the clock used for season selection and timestamps. Defaults to time.Now.
	Now func() time.Time
}

type analysisService struct {
	source DataSource
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewAnalysisService creates the analysis service
func NewAnalysisService(cfg ServiceConfig) AnalysisService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &analysisService{
		source: cfg.Source,
		logger: cfg.Logger.Sugar(),
		now:    cfg.Now,
	}
}

// matchData is everything fetched for a matchup
type matchData struct {
	h2h     models.Outcome[models.H2HData]
	player1 models.Outcome[models.PlayerInfo]
	player2 models.Outcome[models.PlayerInfo]
	atp     models.Outcome[[]models.Standing]
	wta     models.Outcome[[]models.Standing]
}

func (d *matchData) quality() map[string]models.DataStatus {
	return map[string]models.DataStatus{
		models.SourceH2H:          d.h2h.Status,
		models.SourcePlayer1:      d.player1.Status,
		models.SourcePlayer2:      d.player2.Status,
		models.SourceATPStandings: d.atp.Status,
		models.SourceWTAStandings: d.wta.Status,
	}
}

// fetchMatch issues all five fetches concurrently and waits for every one.
// Fetches report failures through their Outcome, so the group never errors;
// it only propagates cancellation.
func (s *analysisService) fetchMatch(ctx context.Context, player1, player2 int64) *matchData {
	d := &matchData{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.h2h = s.source.FetchH2H(gctx, player1, player2)
		return nil
	})
	g.Go(func() error {
		d.player1 = s.source.FetchPlayer(gctx, player1)
		return nil
	})
	g.Go(func() error {
		d.player2 = s.source.FetchPlayer(gctx, player2)
		return nil
	})
	g.Go(func() error {
		d.atp = s.source.FetchStandings(gctx, models.LeagueATP)
		return nil
	})
	g.Go(func() error {
		d.wta = s.source.FetchStandings(gctx, models.LeagueWTA)
		return nil
	})
	_ = g.Wait()

	s.recordDegraded(d.quality())
	return d
}

// fetchPlayer fetches one player and both standings concurrently
func (s *analysisService) fetchPlayer(ctx context.Context, playerKey int64) (models.Outcome[models.PlayerInfo], []models.Standing, []models.Standing) {
	var (
		info     models.Outcome[models.PlayerInfo]
		atp, wta models.Outcome[[]models.Standing]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info = s.source.FetchPlayer(gctx, playerKey)
		return nil
	})
	g.Go(func() error {
		atp = s.source.FetchStandings(gctx, models.LeagueATP)
		return nil
	})
	g.Go(func() error {
		wta = s.source.FetchStandings(gctx, models.LeagueWTA)
		return nil
	})
	_ = g.Wait()

	s.recordDegraded(map[string]models.DataStatus{
		models.SourcePlayer1:      info.Status,
		models.SourceATPStandings: atp.Status,
		models.SourceWTAStandings: wta.Status,
	})
	return info, atp.Value(), wta.Value()
}

func (s *analysisService) recordDegraded(quality map[string]models.DataStatus) {
	for source, status := range quality {
		if status != models.DataOK {
			degradedSources.WithLabelValues(source, string(status)).Inc()
		}
	}
}

func (s *analysisService) GetMatchPredictions(ctx context.Context, player1, player2 int64) (*models.MatchBettingPredictions, error) {
	start := time.Now()
	defer func() { analysisDuration.WithLabelValues("predictions").Observe(time.Since(start).Seconds()) }()

	d := s.fetchMatch(ctx, player1, player2)
	now := s.now()

	records := d.h2h.Value().H2H
	h2h := SummarizeH2H(records)
	p1 := BuildProfile(player1, d.player1.Value(), d.atp.Value(), d.wta.Value(), now)
	p2 := BuildProfile(player2, d.player2.Value(), d.atp.Value(), d.wta.Value(), now)
	p1.PlayerName = fillName(p1.PlayerName, records, player1)
	p2.PlayerName = fillName(p2.PlayerName, records, player2)

	predictions := GeneratePredictions(h2h, p1, p2)
	result := &models.MatchBettingPredictions{
		Player1Key:        player1,
		Player2Key:        player2,
		Player1Name:       p1.PlayerName,
		Player2Name:       p2.PlayerName,
		Predictions:       predictions,
		OverallConfidence: roundConfidence(OverallConfidence(predictions)),
		PredictedAt:       now,
		DataQuality:       d.quality(),
	}

	if err := CheckContract(result); err != nil {
		s.logger.Errorw("Prediction contract violated", "player1", player1, "player2", player2, "error", err)
		return nil, fmt.Errorf("predictions for %d vs %d: %w", player1, player2, err)
	}

	for _, p := range predictions {
		predictionsGenerated.WithLabelValues(p.BetType, string(p.Recommendation)).Inc()
	}

	s.logger.Infow("Predictions generated",
		"player1", player1,
		"player2", player2,
		"h2hMatches", h2h.TotalMatches,
		"overallConfidence", result.OverallConfidence,
	)
	return result, nil
}

func (s *analysisService) AnalyzeH2H(ctx context.Context, player1, player2 int64) (*models.H2HSummary, error) {
	start := time.Now()
	defer func() { analysisDuration.WithLabelValues("h2h").Observe(time.Since(start).Seconds()) }()

	out := s.source.FetchH2H(ctx, player1, player2)
	s.recordDegraded(map[string]models.DataStatus{models.SourceH2H: out.Status})

	summary := SummarizeH2H(out.Value().H2H)
	return &summary, nil
}

func (s *analysisService) AnalyzePlayer(ctx context.Context, playerKey int64) (*models.PlayerPerformanceProfile, error) {
	start := time.Now()
	defer func() { analysisDuration.WithLabelValues("player").Observe(time.Since(start).Seconds()) }()

	info, atp, wta := s.fetchPlayer(ctx, playerKey)
	profile := BuildProfile(playerKey, info.Value(), atp, wta, s.now())
	return &profile, nil
}

func (s *analysisService) AnalyzeMatch(ctx context.Context, player1, player2 int64) (*models.MatchAnalysis, error) {
	start := time.Now()
	defer func() { analysisDuration.WithLabelValues("match").Observe(time.Since(start).Seconds()) }()

	d := s.fetchMatch(ctx, player1, player2)
	now := s.now()
	h2hData := d.h2h.Value()

	p1 := BuildProfile(player1, d.player1.Value(), d.atp.Value(), d.wta.Value(), now)
	p2 := BuildProfile(player2, d.player2.Value(), d.atp.Value(), d.wta.Value(), now)
	p1.PlayerName = fillName(p1.PlayerName, h2hData.H2H, player1)
	p2.PlayerName = fillName(p2.PlayerName, h2hData.H2H, player2)

	return &models.MatchAnalysis{
		Player1:              p1,
		Player2:              p2,
		H2H:                  SummarizeH2H(h2hData.H2H),
		H2HMatches:           H2HMatchList(h2hData.H2H),
		Player1RecentMatches: RecentMatches(h2hData.FirstPlayerResults),
		Player2RecentMatches: RecentMatches(h2hData.SecondPlayerResults),
		AnalyzedAt:           now,
	}, nil
}

func (s *analysisService) GetPlayerAnalysis(ctx context.Context, playerKey int64) (*models.PlayerAnalysis, error) {
	start := time.Now()
	defer func() { analysisDuration.WithLabelValues("career").Observe(time.Since(start).Seconds()) }()

	info, atp, wta := s.fetchPlayer(ctx, playerKey)
	analysis := BuildPlayerAnalysis(playerKey, info.Value(), atp, wta, s.now())
	return &analysis, nil
}
