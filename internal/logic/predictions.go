package logic

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// Confidence ceilings per bet type
const (
	MaxMatchWinnerConfidence = 0.95
	MaxFirstSetConfidence    = 0.85
	MaxHandicapConfidence    = 0.75
)

// Fixed odds and confidences
const (
	DefaultMatchWinnerOdds = 1.5
	MinMatchWinnerOdds     = 1.1
	TotalSetsOdds          = 1.8
	FirstSetOdds           = 1.9
	HandicapOdds           = 1.85
	ComebackOdds           = 3.5

	TotalSetsConfidence = 0.4
	ComebackConfidence  = 0.3
)

// Signal weights
const (
	matchWinnerH2HWeight     = 0.6
	matchWinnerRankingWeight = 0.4
	firstSetH2HWeight        = 0.7
	firstSetSeasonWeight     = 0.3
	handicapH2HWeight        = 0.6
	handicapSeasonWeight     = 0.4
)

const insufficientData = "Insufficient data"

// RecommendationFor maps a confidence to its tier. Bounds are inclusive.
func RecommendationFor(confidence float64) models.Recommendation {
	switch {
	case confidence >= 0.8:
		return models.StrongBet
	case confidence >= 0.6:
		return models.ModerateBet
	case confidence >= 0.4:
		return models.WeakBet
	default:
		return models.AvoidBet
	}
}

// rankingSignal buckets the distance between two ranks
func rankingSignal(rank1, rank2 int) float64 {
	diff := rank1 - rank2
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff > 100:
		return 0.8
	case diff > 50:
		return 0.6
	case diff > 20:
		return 0.4
	default:
		return 0.2
	}
}

// roundOdds rounds to two decimal places
func roundOdds(odds float64) float64 {
	f, _ := decimal.NewFromFloat(odds).Round(2).Float64()
	return f
}

// roundConfidence drops float noise (0.7-0.3 is 0.39999999999999997) so the
// tier boundaries stay inclusive
func roundConfidence(c float64) float64 {
	f, _ := decimal.NewFromFloat(c).Round(4).Float64()
	return f
}

func percent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

// displayName is the player's name, or the slot label when the name is
// missing or the unknown-player placeholder
func displayName(p models.PlayerPerformanceProfile, fallback string) string {
	if p.PlayerName == "" || p.PlayerName == models.UnknownPlayerName {
		return fallback
	}
	return p.PlayerName
}

func fallbackPrediction(betType, reasoning string, odds float64, sources ...string) models.BettingPrediction {
	return models.BettingPrediction{
		BetType:          betType,
		PredictedOutcome: insufficientData,
		Confidence:       0,
		Reasoning:        reasoning,
		DataSources:      sources,
		RecommendedOdds:  odds,
		Recommendation:   models.AvoidBet,
	}
}

func scored(betType, outcome, reasoning string, confidence, ceiling, odds float64, sources ...string) models.BettingPrediction {
	c := roundConfidence(clamp(confidence, 0, ceiling))
	return models.BettingPrediction{
		BetType:          betType,
		PredictedOutcome: outcome,
		Confidence:       c,
		Reasoning:        reasoning,
		DataSources:      sources,
		RecommendedOdds:  roundOdds(odds),
		Recommendation:   RecommendationFor(c),
	}
}

// GeneratePredictions returns the five predictions in fixed order:
// match winner, total sets, first set winner, handicap, comeback.
func GeneratePredictions(h2h models.H2HSummary, p1, p2 models.PlayerPerformanceProfile) []models.BettingPrediction {
	return []models.BettingPrediction{
		MatchWinnerPrediction(h2h, p1, p2),
		TotalSetsPrediction(h2h),
		FirstSetPrediction(h2h, p1, p2),
		HandicapPrediction(h2h, p1, p2),
		ComebackPrediction(),
	}
}

// MatchWinnerPrediction blends the H2H win-rate gap with the ranking gap.
// When only one signal is available it carries full weight.
func MatchWinnerPrediction(h2h models.H2HSummary, p1, p2 models.PlayerPerformanceProfile) models.BettingPrediction {
	hasH2H := h2h.HasData()
	hasRanking := p1.Ranking != nil && p2.Ranking != nil

	if !hasH2H && !hasRanking {
		return fallbackPrediction(models.BetMatchWinner,
			"No head-to-head history or ranking information found for this matchup.",
			DefaultMatchWinnerOdds, "No H2H", "No Ranking")
	}

	var h2hSignal, rankSignal float64
	if hasH2H {
		h2hSignal = math.Abs(h2h.Player1WinRate - h2h.Player2WinRate)
	}
	if hasRanking {
		rankSignal = rankingSignal(*p1.Ranking, *p2.Ranking)
	}

	var confidence float64
	switch {
	case hasH2H && hasRanking:
		confidence = h2hSignal*matchWinnerH2HWeight + rankSignal*matchWinnerRankingWeight
	case hasH2H:
		confidence = h2hSignal
	default:
		confidence = rankSignal
	}

	player1Favoured := false
	switch {
	case hasH2H && h2h.Player1WinRate != h2h.Player2WinRate:
		player1Favoured = h2h.Player1WinRate > h2h.Player2WinRate
	case hasRanking:
		player1Favoured = *p1.Ranking < *p2.Ranking
	}

	winner := displayName(p2, "Player 2")
	favouredRate := h2h.Player2WinRate
	if player1Favoured {
		winner = displayName(p1, "Player 1")
		favouredRate = h2h.Player1WinRate
	}

	odds := DefaultMatchWinnerOdds
	if hasH2H && favouredRate > 0 {
		odds = math.Max(1/favouredRate, MinMatchWinnerOdds)
	}

	reasoning := ""
	if hasH2H {
		reasoning = fmt.Sprintf("H2H: %s vs %s", percent(h2h.Player1WinRate), percent(h2h.Player2WinRate))
	}
	if hasRanking {
		if reasoning != "" {
			reasoning += ", "
		}
		reasoning += fmt.Sprintf("Ranking: %d vs %d", *p1.Ranking, *p2.Ranking)
	}

	sources := []string{"No H2H", "No Ranking"}
	if hasH2H {
		sources[0] = "H2H History"
	}
	if hasRanking {
		sources[1] = "Player Ranking"
	}

	return scored(models.BetMatchWinner, winner, reasoning, confidence, MaxMatchWinnerConfidence, odds, sources...)
}

// TotalSetsPrediction predicts the set count from the H2H average. The
// average is a placeholder, so confidence is fixed low.
func TotalSetsPrediction(h2h models.H2HSummary) models.BettingPrediction {
	if !h2h.HasData() {
		return fallbackPrediction(models.BetTotalSets,
			"No head-to-head history found. Set analysis is not possible.",
			TotalSetsOdds, "No H2H")
	}

	outcome := "2 Set"
	if h2h.AverageSets > 2.5 {
		outcome = "3+ Set"
	}

	reasoning := fmt.Sprintf("Average sets: %.1f (H2H: %d matches)", h2h.AverageSets, h2h.TotalMatches)
	if h2h.PlaceholderSetData {
		reasoning += "; set counts are estimated, not measured"
	}

	return scored(models.BetTotalSets, outcome, reasoning, TotalSetsConfidence, 1, TotalSetsOdds, "H2H Match History")
}

// FirstSetPrediction blends the first-set win-rate gap with the season gap
func FirstSetPrediction(h2h models.H2HSummary, p1, p2 models.PlayerPerformanceProfile) models.BettingPrediction {
	// without season stats only placeholder first-set rates remain
	if !p1.HasSeasonMatches() && !p2.HasSeasonMatches() {
		return fallbackPrediction(models.BetFirstSet,
			"Insufficient data: no season statistics found for either player.",
			FirstSetOdds, "No Season Stats")
	}

	fsDiff := h2h.Player1FirstSetWinRate - h2h.Player2FirstSetWinRate
	seasonDiff := p1.SeasonWinRate - p2.SeasonWinRate

	confidence := math.Abs(fsDiff)*firstSetH2HWeight + math.Abs(seasonDiff)*firstSetSeasonWeight
	score := fsDiff*firstSetH2HWeight + seasonDiff*firstSetSeasonWeight

	winner := displayName(p2, "Player 2")
	if score > 0 {
		winner = displayName(p1, "Player 1")
	}

	reasoning := fmt.Sprintf("First set H2H: %s vs %s, Season: %s vs %s",
		percent(h2h.Player1FirstSetWinRate), percent(h2h.Player2FirstSetWinRate),
		percent(p1.SeasonWinRate), percent(p2.SeasonWinRate))
	if h2h.PlaceholderSetData || !h2h.HasData() {
		reasoning += "; first set rates are placeholders"
	}

	return scored(models.BetFirstSet, winner, reasoning, confidence, MaxFirstSetConfidence, FirstSetOdds,
		"H2H First Set", "Season Performance")
}

// HandicapPrediction picks the side expected to cover -1.5 sets
func HandicapPrediction(h2h models.H2HSummary, p1, p2 models.PlayerPerformanceProfile) models.BettingPrediction {
	hasH2H := h2h.HasData()
	if !hasH2H && !p1.HasSeasonMatches() && !p2.HasSeasonMatches() {
		return fallbackPrediction(models.BetHandicap,
			"No head-to-head history or season statistics found for either player.",
			HandicapOdds, "No H2H", "No Season Stats")
	}

	h2hGap := math.Abs(h2h.Player1WinRate - h2h.Player2WinRate)
	seasonGap := math.Abs(p1.SeasonWinRate - p2.SeasonWinRate)
	confidence := h2hGap*handicapH2HWeight + seasonGap*handicapSeasonWeight

	var player1Favoured bool
	if hasH2H && h2h.Player1WinRate != h2h.Player2WinRate {
		player1Favoured = h2h.Player1WinRate > h2h.Player2WinRate
	} else {
		player1Favoured = p1.SeasonWinRate > p2.SeasonWinRate
	}

	side := displayName(p2, "Player 2")
	if player1Favoured {
		side = displayName(p1, "Player 1")
	}

	reasoning := fmt.Sprintf("H2H gap: %s, Season gap: %s", percent(h2hGap), percent(seasonGap))

	return scored(models.BetHandicap, side+" (-1.5)", reasoning, confidence, MaxHandicapConfidence, HandicapOdds,
		"H2H Match Scores", "Season Performance")
}

// ComebackPrediction is a fixed low-confidence placeholder; first set
// results per match are not available.
func ComebackPrediction() models.BettingPrediction {
	return models.BettingPrediction{
		BetType:          models.BetComeback,
		PredictedOutcome: "Player losing the first set wins the match",
		Confidence:       ComebackConfidence,
		Reasoning:        "Insufficient data: first set scores are not available from the provider",
		DataSources:      []string{"H2H Match History (limited)"},
		RecommendedOdds:  ComebackOdds,
		Recommendation:   models.AvoidBet,
	}
}

// OverallConfidence is the mean confidence of a prediction set
func OverallConfidence(predictions []models.BettingPrediction) float64 {
	if len(predictions) == 0 {
		return 0
	}
	var sum float64
	for _, p := range predictions {
		sum += p.Confidence
	}
	return sum / float64(len(predictions))
}
