package logic

import "github.com/ustadmustafa/TennisBetRecommender/internal/models"

// ResolveRanking looks the player up in both tours' standings. The returned
// standing is the one that set CurrentLeague (ATP wins when present in both),
// or nil when the player is in neither list.
func ResolveRanking(playerKey int64, atp, wta []models.Standing) (models.RankingInfo, *models.Standing) {
	info := models.NewRankingInfo()
	var deciding *models.Standing

	if s := findStanding(playerKey, atp); s != nil {
		info.ATPRank = s.Place
		info.ATPPoints = s.Points
		info.CurrentLeague = models.LeagueATP
		deciding = s
	}

	if s := findStanding(playerKey, wta); s != nil {
		info.WTARank = s.Place
		info.WTAPoints = s.Points
		if deciding == nil {
			info.CurrentLeague = models.LeagueWTA
			deciding = s
		}
	}

	return info, deciding
}

func findStanding(playerKey int64, standings []models.Standing) *models.Standing {
	for i := range standings {
		if standings[i].PlayerKey == playerKey {
			return &standings[i]
		}
	}
	return nil
}
