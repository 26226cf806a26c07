package logic

import (
	"fmt"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// Set-level figures the provider does not expose. They are reported on every
// non-empty summary with PlaceholderSetData set.
const (
	PlaceholderAverageSets     = 2.5
	PlaceholderFirstSetWinRate = 0.5
	PlaceholderTieBreaks       = 0
	PlaceholderTieBreakRate    = 0.0
)

// MaxRecentResults bounds H2HSummary.RecentResults
const MaxRecentResults = 5

// SummarizeH2H reduces a pair's match records to win counts and rates.
// Wins are counted by slot, so player1 is whoever the provider put first.
// With no finished matches the zero summary is returned.
func SummarizeH2H(records []models.MatchRecord) models.H2HSummary {
	finished := finishedMatches(records)
	if len(finished) == 0 {
		return models.H2HSummary{RecentResults: []string{}}
	}

	summary := models.H2HSummary{
		TotalMatches:           len(finished),
		AverageSets:            PlaceholderAverageSets,
		Player1FirstSetWinRate: PlaceholderFirstSetWinRate,
		Player2FirstSetWinRate: PlaceholderFirstSetWinRate,
		TieBreaks:              PlaceholderTieBreaks,
		TieBreakRate:           PlaceholderTieBreakRate,
		PlaceholderSetData:     true,
	}

	for _, m := range finished {
		switch m.Winner {
		case models.FirstPlayerSlot:
			summary.Player1Wins++
		case models.SecondPlayerSlot:
			summary.Player2Wins++
		}
	}

	total := float64(summary.TotalMatches)
	summary.Player1WinRate = float64(summary.Player1Wins) / total
	summary.Player2WinRate = float64(summary.Player2Wins) / total

	start := len(finished) - MaxRecentResults
	if start < 0 {
		start = 0
	}
	summary.RecentResults = make([]string, 0, len(finished)-start)
	for _, m := range finished[start:] {
		summary.RecentResults = append(summary.RecentResults,
			fmt.Sprintf("%s vs %s: %s", m.FirstPlayer, m.SecondPlayer, m.FinalResult))
	}

	return summary
}

func finishedMatches(records []models.MatchRecord) []models.MatchRecord {
	out := make([]models.MatchRecord, 0, len(records))
	for _, m := range records {
		if m.IsFinished() {
			out = append(out, m)
		}
	}
	return out
}

// H2HMatchList maps every H2H record to its display row, winner resolved by name
func H2HMatchList(records []models.MatchRecord) []models.H2HMatchData {
	out := make([]models.H2HMatchData, 0, len(records))
	for _, m := range records {
		out = append(out, models.H2HMatchData{
			Date:       m.EventDate,
			Result:     m.FinalResult,
			Winner:     m.WinnerName(),
			Tournament: m.TournamentName,
			Round:      m.TournamentRound,
		})
	}
	return out
}

// RecentMatches returns up to models.MaxRecentMatches of a player's own results
func RecentMatches(results []models.PlayerResult) []models.PlayerRecentMatch {
	n := len(results)
	if n > models.MaxRecentMatches {
		n = models.MaxRecentMatches
	}
	out := make([]models.PlayerRecentMatch, 0, n)
	for _, r := range results[:n] {
		out = append(out, models.PlayerRecentMatch{
			Date:         r.EventDate,
			FirstPlayer:  r.FirstPlayer,
			SecondPlayer: r.SecondPlayer,
			Result:       r.FinalResult,
			Winner:       r.WinnerName(),
			Tournament:   r.TournamentName,
			Round:        r.TournamentRound,
		})
	}
	return out
}

// H2HPlayerName returns the name the H2H records give a player key, or ""
// when no record carries that key.
func H2HPlayerName(records []models.MatchRecord, playerKey int64) string {
	for _, r := range records {
		switch {
		case r.FirstPlayerKey == playerKey && r.FirstPlayer != "":
			return r.FirstPlayer
		case r.SecondPlayerKey == playerKey && r.SecondPlayer != "":
			return r.SecondPlayer
		}
	}
	return ""
}

// fillName replaces the unknown-player placeholder with the H2H name when
// the stats fetch gave none
func fillName(name string, records []models.MatchRecord, playerKey int64) string {
	if name != "" && name != models.UnknownPlayerName {
		return name
	}
	if n := H2HPlayerName(records, playerKey); n != "" {
		return n
	}
	return name
}
