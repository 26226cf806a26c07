package models

import "time"

// NotAvailable is the display value for missing ranking fields
const NotAvailable = "N/A"

// UnknownPlayerName is used when the provider has no stats for a player
const UnknownPlayerName = "Unknown Player"

// H2HSummary is the comparative reduction of a pair's finished matches.
// AverageSets, the first-set rates and the tie-break fields are constants
// when PlaceholderSetData is true; the provider does not expose set scores
// in a form we parse yet.
type H2HSummary struct {
	TotalMatches           int      `json:"total_matches"`
	Player1Wins            int      `json:"player1_wins"`
	Player2Wins            int      `json:"player2_wins"`
	Player1WinRate         float64  `json:"player1_win_rate"`
	Player2WinRate         float64  `json:"player2_win_rate"`
	RecentResults          []string `json:"recent_results"`
	AverageSets            float64  `json:"average_sets"`
	Player1FirstSetWinRate float64  `json:"player1_first_set_win_rate"`
	Player2FirstSetWinRate float64  `json:"player2_first_set_win_rate"`
	TieBreaks              int      `json:"tie_breaks"`
	TieBreakRate           float64  `json:"tie_break_rate"`
	PlaceholderSetData     bool     `json:"placeholder_set_data"`
}

// HasData reports whether any finished H2H match was seen
func (s H2HSummary) HasData() bool {
	return s.TotalMatches > 0
}

// PlayerPerformanceProfile is a per-request view of one player's current season
type PlayerPerformanceProfile struct {
	PlayerKey        int64     `json:"player_key"`
	PlayerName       string    `json:"player_name"`
	Ranking          *int      `json:"ranking"`
	Points           *int      `json:"points"`
	League           string    `json:"league"`
	Season           string    `json:"season"`
	SeasonWinRate    float64   `json:"season_win_rate"`
	HardCourtWinRate float64   `json:"hard_court_win_rate"`
	ClayCourtWinRate float64   `json:"clay_court_win_rate"`
	GrassWinRate     float64   `json:"grass_win_rate"`
	TotalMatches     int       `json:"total_matches"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// HasSeasonMatches reports whether the selected season had any decided match
func (p PlayerPerformanceProfile) HasSeasonMatches() bool {
	return p.TotalMatches > 0
}

// WLRecord is a won/lost pair with its win rate
type WLRecord struct {
	Won     int     `json:"won"`
	Lost    int     `json:"lost"`
	WinRate float64 `json:"win_rate"`
}

// OverallStats sums all seasons of a player
type OverallStats struct {
	Won     int     `json:"won"`
	Lost    int     `json:"lost"`
	WinRate float64 `json:"win_rate"`
	Titles  int     `json:"titles"`
}

// SurfaceStats sums all seasons per surface
type SurfaceStats struct {
	Hard  WLRecord `json:"hard"`
	Clay  WLRecord `json:"clay"`
	Grass WLRecord `json:"grass"`
}

// RankingInfo is a player's position in both tours. Missing values are "N/A".
type RankingInfo struct {
	ATPRank       string `json:"atp_rank"`
	ATPPoints     string `json:"atp_points"`
	WTARank       string `json:"wta_rank"`
	WTAPoints     string `json:"wta_points"`
	CurrentLeague string `json:"current_league"`
}

// NewRankingInfo returns a RankingInfo with every field "N/A"
func NewRankingInfo() RankingInfo {
	return RankingInfo{
		ATPRank:       NotAvailable,
		ATPPoints:     NotAvailable,
		WTARank:       NotAvailable,
		WTAPoints:     NotAvailable,
		CurrentLeague: NotAvailable,
	}
}

// PlayerAnalysis is a career overview across all seasons
type PlayerAnalysis struct {
	PlayerKey     int64        `json:"player_key"`
	PlayerName    string       `json:"player_name"`
	Country       string       `json:"country"`
	Overall       OverallStats `json:"overall"`
	Surfaces      SurfaceStats `json:"surfaces"`
	Ranking       RankingInfo  `json:"ranking"`
	SeasonsPlayed int          `json:"seasons_played"`
	AnalyzedAt    time.Time    `json:"analyzed_at"`
}

// H2HMatchData is one row of the H2H match list in a MatchAnalysis
type H2HMatchData struct {
	Date       string `json:"date"`
	Result     string `json:"result"`
	Winner     string `json:"winner"`
	Tournament string `json:"tournament"`
	Round      string `json:"round"`
}

// PlayerRecentMatch is one of a player's own recent matches
type PlayerRecentMatch struct {
	Date         string `json:"date"`
	FirstPlayer  string `json:"first_player"`
	SecondPlayer string `json:"second_player"`
	Result       string `json:"result"`
	Winner       string `json:"winner"`
	Tournament   string `json:"tournament"`
	Round        string `json:"round"`
}

// MaxRecentMatches bounds each player's recent match list in MatchAnalysis
const MaxRecentMatches = 10

// MatchAnalysis is the side-by-side view of a matchup
type MatchAnalysis struct {
	Player1              PlayerPerformanceProfile `json:"player1"`
	Player2              PlayerPerformanceProfile `json:"player2"`
	H2H                  H2HSummary               `json:"h2h"`
	H2HMatches           []H2HMatchData           `json:"h2h_matches"`
	Player1RecentMatches []PlayerRecentMatch      `json:"player1_recent_matches"`
	Player2RecentMatches []PlayerRecentMatch      `json:"player2_recent_matches"`
	AnalyzedAt           time.Time                `json:"analyzed_at"`
}
