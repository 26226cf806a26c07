package logic

import (
	"testing"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 7 ", 7},
		{"", 0},
		{"-", 0},
		{"N/A", 0},
		{"3.5", 0},
		{"-4", 0},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRank(t *testing.T) {
	if got := ParseRank("15"); got == nil || *got != 15 {
		t.Errorf("ParseRank(15) = %v, want 15", got)
	}
	for _, in := range []string{"", "N/A", "unranked"} {
		if got := ParseRank(in); got != nil {
			t.Errorf("ParseRank(%q) = %d, want nil", in, *got)
		}
	}
}

func TestAggregateStats(t *testing.T) {
	stats := []models.SeasonStat{
		{Season: "2024", MatchesWon: "30", MatchesLost: "10", Titles: "2", HardWon: "20", HardLost: "5", ClayWon: "5", ClayLost: "5", GrassWon: "5", GrassLost: "0"},
		{Season: "2023", MatchesWon: "10", MatchesLost: "10", Titles: "", HardWon: "x", HardLost: "5", ClayWon: "", ClayLost: "", GrassWon: "", GrassLost: ""},
	}

	overall, surfaces := AggregateStats(stats)

	if overall.Won != 40 || overall.Lost != 20 {
		t.Errorf("overall = %d/%d, want 40/20", overall.Won, overall.Lost)
	}
	if overall.Titles != 2 {
		t.Errorf("titles = %d, want 2", overall.Titles)
	}
	if want := 40.0 / 60.0; overall.WinRate != want {
		t.Errorf("overall win rate = %f, want %f", overall.WinRate, want)
	}
	if surfaces.Hard.Won != 20 || surfaces.Hard.Lost != 10 {
		t.Errorf("hard = %d/%d, want 20/10", surfaces.Hard.Won, surfaces.Hard.Lost)
	}
	if surfaces.Clay.WinRate != 0.5 {
		t.Errorf("clay win rate = %f, want 0.5", surfaces.Clay.WinRate)
	}
	if surfaces.Grass.WinRate != 1 {
		t.Errorf("grass win rate = %f, want 1", surfaces.Grass.WinRate)
	}
}

func TestAggregateStats_NoMatchesNoDivideByZero(t *testing.T) {
	tests := []struct {
		name  string
		stats []models.SeasonStat
	}{
		{"nil", nil},
		{"empty season", []models.SeasonStat{{Season: "2024"}}},
		{"garbage", []models.SeasonStat{{MatchesWon: "abc", MatchesLost: "-", HardWon: "?"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overall, surfaces := AggregateStats(tt.stats)
			if overall.WinRate != 0 || surfaces.Hard.WinRate != 0 || surfaces.Clay.WinRate != 0 || surfaces.Grass.WinRate != 0 {
				t.Errorf("expected zero rates, got overall=%f surfaces=%+v", overall.WinRate, surfaces)
			}
		})
	}
}
