package logic

import (
	"strconv"
	"time"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// BuildProfile derives a player's current-season profile. The current season
// is the first stats entry whose season matches now's year, else the first
// entry. A player without stats yields the "unknown player" profile.
func BuildProfile(playerKey int64, info models.PlayerInfo, atp, wta []models.Standing, now time.Time) models.PlayerPerformanceProfile {
	profile := models.PlayerPerformanceProfile{
		PlayerKey:  playerKey,
		PlayerName: models.UnknownPlayerName,
		League:     models.NotAvailable,
		AnalyzedAt: now,
	}
	if len(info.Stats) == 0 {
		return profile
	}

	if info.PlayerName != "" {
		profile.PlayerName = info.PlayerName
	}

	season := currentSeason(info.Stats, now.Year())
	won := ParseCount(season.MatchesWon)
	lost := ParseCount(season.MatchesLost)

	profile.Season = season.Season
	profile.TotalMatches = won + lost
	profile.SeasonWinRate = winRate(won, lost)
	profile.HardCourtWinRate = winRate(ParseCount(season.HardWon), ParseCount(season.HardLost))
	profile.ClayCourtWinRate = winRate(ParseCount(season.ClayWon), ParseCount(season.ClayLost))
	profile.GrassWinRate = winRate(ParseCount(season.GrassWon), ParseCount(season.GrassLost))

	ranking, standing := ResolveRanking(playerKey, atp, wta)
	profile.League = ranking.CurrentLeague
	if standing != nil {
		profile.Ranking = ParseRank(standing.Place)
		profile.Points = ParseRank(standing.Points)
	}

	return profile
}

func currentSeason(stats []models.SeasonStat, year int) models.SeasonStat {
	y := strconv.Itoa(year)
	for _, s := range stats {
		if s.Season == y {
			return s
		}
	}
	return stats[0]
}

// BuildPlayerAnalysis aggregates a player's whole career with both tours' rankings
func BuildPlayerAnalysis(playerKey int64, info models.PlayerInfo, atp, wta []models.Standing, now time.Time) models.PlayerAnalysis {
	analysis := models.PlayerAnalysis{
		PlayerKey:  playerKey,
		PlayerName: models.UnknownPlayerName,
		Ranking:    models.NewRankingInfo(),
		AnalyzedAt: now,
	}
	if len(info.Stats) == 0 {
		return analysis
	}

	if info.PlayerName != "" {
		analysis.PlayerName = info.PlayerName
	}
	analysis.Country = info.PlayerCountry
	analysis.Overall, analysis.Surfaces = AggregateStats(info.Stats)
	analysis.Ranking, _ = ResolveRanking(playerKey, atp, wta)
	analysis.SeasonsPlayed = countSeasons(info.Stats)

	return analysis
}

func countSeasons(stats []models.SeasonStat) int {
	seen := make(map[string]struct{}, len(stats))
	for _, s := range stats {
		if s.Season != "" {
			seen[s.Season] = struct{}{}
		}
	}
	return len(seen)
}
