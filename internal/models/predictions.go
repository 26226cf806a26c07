package models

import "time"

// Recommendation is the betting tier derived from a prediction's confidence
type Recommendation string

const (
	StrongBet   Recommendation = "StrongBet"
	ModerateBet Recommendation = "ModerateBet"
	WeakBet     Recommendation = "WeakBet"
	AvoidBet    Recommendation = "AvoidBet"
)

// Bet type labels, in the order predictions are returned
const (
	BetMatchWinner   = "Match Winner"
	BetTotalSets     = "Total Sets"
	BetFirstSet      = "First Set Winner"
	BetHandicap      = "Handicap (-1.5)"
	BetComeback      = "Comeback"
	PredictionsCount = 5
)

// BettingPrediction is one scored prediction for a matchup
type BettingPrediction struct {
	BetType          string         `json:"bet_type" validate:"required"`
	PredictedOutcome string         `json:"predicted_outcome" validate:"required"`
	Confidence       float64        `json:"confidence" validate:"gte=0,lte=1"`
	Reasoning        string         `json:"reasoning" validate:"required"`
	DataSources      []string       `json:"data_sources"`
	RecommendedOdds  float64        `json:"recommended_odds" validate:"gte=1"`
	Recommendation   Recommendation `json:"recommendation" validate:"oneof=StrongBet ModerateBet WeakBet AvoidBet"`
}

// MatchBettingPredictions is the full prediction set for one matchup
type MatchBettingPredictions struct {
	Player1Key        int64                 `json:"player1_key"`
	Player2Key        int64                 `json:"player2_key"`
	Player1Name       string                `json:"player1_name"`
	Player2Name       string                `json:"player2_name"`
	Predictions       []BettingPrediction   `json:"predictions" validate:"len=5,dive"`
	OverallConfidence float64               `json:"overall_confidence" validate:"gte=0,lte=1"`
	PredictedAt       time.Time             `json:"predicted_at"`
	DataQuality       map[string]DataStatus `json:"data_quality"`
}

// Data source names used in DataQuality
const (
	SourceH2H          = "h2h"
	SourcePlayer1      = "player1"
	SourcePlayer2      = "player2"
	SourceATPStandings = "atp_standings"
	SourceWTAStandings = "wta_standings"
)
