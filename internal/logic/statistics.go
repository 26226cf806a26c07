package logic

import "github.com/ustadmustafa/TennisBetRecommender/internal/models"

// AggregateStats sums every season bucket into overall and per-surface
// records. No season or type filtering is applied.
func AggregateStats(stats []models.SeasonStat) (models.OverallStats, models.SurfaceStats) {
	var overall models.OverallStats
	var surfaces models.SurfaceStats

	for _, s := range stats {
		overall.Won += ParseCount(s.MatchesWon)
		overall.Lost += ParseCount(s.MatchesLost)
		overall.Titles += ParseCount(s.Titles)

		surfaces.Hard.Won += ParseCount(s.HardWon)
		surfaces.Hard.Lost += ParseCount(s.HardLost)
		surfaces.Clay.Won += ParseCount(s.ClayWon)
		surfaces.Clay.Lost += ParseCount(s.ClayLost)
		surfaces.Grass.Won += ParseCount(s.GrassWon)
		surfaces.Grass.Lost += ParseCount(s.GrassLost)
	}

	overall.WinRate = winRate(overall.Won, overall.Lost)
	surfaces.Hard.WinRate = winRate(surfaces.Hard.Won, surfaces.Hard.Lost)
	surfaces.Clay.WinRate = winRate(surfaces.Clay.Won, surfaces.Clay.Lost)
	surfaces.Grass.WinRate = winRate(surfaces.Grass.Won, surfaces.Grass.Lost)

	return overall, surfaces
}
