package logic

import (
	"fmt"
	"testing"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

func TestSummarizeH2H_NoData(t *testing.T) {
	tests := []struct {
		name    string
		records []models.MatchRecord
	}{
		{"nil", nil},
		{"empty", []models.MatchRecord{}},
		{"nothing finished", []models.MatchRecord{
			{Winner: models.FirstPlayerSlot, Status: "Retired"},
			{Winner: models.SecondPlayerSlot, Status: "Cancelled"},
			{Status: ""},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeH2H(tt.records)
			if got.TotalMatches != 0 || got.Player1WinRate != 0 || got.Player2WinRate != 0 {
				t.Errorf("expected zero summary, got %+v", got)
			}
			if got.PlaceholderSetData || got.AverageSets != 0 || got.Player1FirstSetWinRate != 0 {
				t.Errorf("zero summary must not carry placeholders, got %+v", got)
			}
			if got.HasData() {
				t.Error("HasData = true, want false")
			}
		})
	}
}

func TestSummarizeH2H_CountsBySlot(t *testing.T) {
	records := append(h2hRecords(3, 1), models.MatchRecord{Winner: models.FirstPlayerSlot, Status: "Walkover"})

	got := SummarizeH2H(records)

	if got.TotalMatches != 4 {
		t.Fatalf("TotalMatches = %d, want 4", got.TotalMatches)
	}
	if got.Player1Wins != 3 || got.Player2Wins != 1 {
		t.Errorf("wins = %d/%d, want 3/1", got.Player1Wins, got.Player2Wins)
	}
	if got.Player1WinRate != 0.75 || got.Player2WinRate != 0.25 {
		t.Errorf("rates = %f/%f, want 0.75/0.25", got.Player1WinRate, got.Player2WinRate)
	}
	if !got.PlaceholderSetData || got.AverageSets != PlaceholderAverageSets {
		t.Errorf("expected placeholder set data, got %+v", got)
	}
	if got.Player1FirstSetWinRate != PlaceholderFirstSetWinRate || got.Player2FirstSetWinRate != PlaceholderFirstSetWinRate {
		t.Errorf("first set rates = %f/%f", got.Player1FirstSetWinRate, got.Player2FirstSetWinRate)
	}
	if got.TieBreaks != 0 || got.TieBreakRate != 0 {
		t.Errorf("tie breaks = %d/%f, want 0/0", got.TieBreaks, got.TieBreakRate)
	}
}

func TestSummarizeH2H_RecentResultsBounded(t *testing.T) {
	var records []models.MatchRecord
	for i := 0; i < 8; i++ {
		records = append(records, models.MatchRecord{
			FirstPlayer:  "A",
			SecondPlayer: "B",
			FinalResult:  fmt.Sprintf("result-%d", i),
			Winner:       models.FirstPlayerSlot,
			Status:       models.StatusFinished,
		})
	}

	got := SummarizeH2H(records)

	if len(got.RecentResults) != MaxRecentResults {
		t.Fatalf("len(RecentResults) = %d, want %d", len(got.RecentResults), MaxRecentResults)
	}
	if got.RecentResults[0] != "A vs B: result-3" {
		t.Errorf("RecentResults[0] = %q, want last five in provider order", got.RecentResults[0])
	}
	if got.RecentResults[4] != "A vs B: result-7" {
		t.Errorf("RecentResults[4] = %q", got.RecentResults[4])
	}
}

func TestH2HMatchList(t *testing.T) {
	records := []models.MatchRecord{
		{EventDate: "2024-01-10", FirstPlayer: "A", SecondPlayer: "B", FinalResult: "0 - 2", Winner: models.SecondPlayerSlot, TournamentName: "Open", TournamentRound: "Final"},
	}
	got := H2HMatchList(records)
	if len(got) != 1 || got[0].Winner != "B" || got[0].Round != "Final" {
		t.Errorf("H2HMatchList() = %+v", got)
	}
}

func TestRecentMatches_Bounded(t *testing.T) {
	results := make([]models.PlayerResult, 15)
	for i := range results {
		results[i] = models.PlayerResult{EventDate: fmt.Sprintf("d%d", i), FirstPlayer: "A", SecondPlayer: "X", Winner: models.FirstPlayerSlot}
	}
	got := RecentMatches(results)
	if len(got) != models.MaxRecentMatches {
		t.Fatalf("len = %d, want %d", len(got), models.MaxRecentMatches)
	}
	if got[0].Date != "d0" || got[0].Winner != "A" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if len(RecentMatches(nil)) != 0 {
		t.Error("expected empty list for nil input")
	}
}

func TestH2HPlayerName(t *testing.T) {
	records := []models.MatchRecord{
		{FirstPlayer: "Bea", FirstPlayerKey: 2, SecondPlayer: "Alice", SecondPlayerKey: 1},
		{FirstPlayer: "Alice", FirstPlayerKey: 1, SecondPlayer: "Bea", SecondPlayerKey: 2},
	}

	tests := []struct {
		key  int64
		want string
	}{
		{1, "Alice"},
		{2, "Bea"},
		{3, ""},
	}
	for _, tt := range tests {
		if got := H2HPlayerName(records, tt.key); got != tt.want {
			t.Errorf("H2HPlayerName(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if got := fillName("Carla", records, 1); got != "Carla" {
		t.Errorf("fillName kept %q, want Carla", got)
	}
	if got := fillName(models.UnknownPlayerName, records, 1); got != "Alice" {
		t.Errorf("fillName = %q, want Alice", got)
	}
	if got := fillName(models.UnknownPlayerName, records, 9); got != models.UnknownPlayerName {
		t.Errorf("fillName = %q, want placeholder kept", got)
	}
}
