package models

import (
	"encoding/json"
	"testing"
)

func TestFlexUnmarshal_SeasonStatNumbers(t *testing.T) {
	input := `[{"season": 2024, "type": "singles", "rank": 12, "titles": "2", "matches_won": 41, "matches_lost": "15", "hard_won": 20, "hard_lost": 8, "clay_won": "", "clay_lost": null, "grass_won": "5", "grass_lost": "2"}]`

	var stats []SeasonStat
	if err := json.Unmarshal([]byte(input), &stats); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected 1 stat, got %d", len(stats))
	}

	s := stats[0]
	if s.Season != "2024" {
		t.Errorf("Season = %q, want 2024", s.Season)
	}
	if s.Rank != "12" {
		t.Errorf("Rank = %q, want 12", s.Rank)
	}
	if s.MatchesWon != "41" {
		t.Errorf("MatchesWon = %q, want 41", s.MatchesWon)
	}
	if s.MatchesLost != "15" {
		t.Errorf("MatchesLost = %q, want 15", s.MatchesLost)
	}
	if s.ClayWon != "" || s.ClayLost != "" {
		t.Errorf("Clay = %q/%q, want empty", s.ClayWon, s.ClayLost)
	}
	if s.GrassWon != "5" {
		t.Errorf("GrassWon = %q, want 5", s.GrassWon)
	}
}

func TestFlexUnmarshal_StringKeys(t *testing.T) {
	input := `{"place": "1", "player": "Jannik Sinner", "player_key": "1905", "league": "ATP", "points": 11830}`

	var s Standing
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if s.PlayerKey != 1905 {
		t.Errorf("PlayerKey = %d, want 1905", s.PlayerKey)
	}
	if s.Points != "11830" {
		t.Errorf("Points = %q, want 11830", s.Points)
	}
	if s.Player != "Jannik Sinner" {
		t.Errorf("Player = %q, want Jannik Sinner", s.Player)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `{"event_key": 1234, "event_date": "2024-05-01", "event_first_player": "A. Player", "event_second_player": "B. Player", "event_final_result": "2 - 1", "event_winner": "First Player", "event_status": "Finished"}`

	var m MatchRecord
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if m.EventKey != 1234 {
		t.Errorf("EventKey = %d, want 1234", m.EventKey)
	}
	if !m.IsFinished() {
		t.Error("IsFinished = false, want true")
	}
	if m.WinnerName() != "A. Player" {
		t.Errorf("WinnerName = %q, want A. Player", m.WinnerName())
	}
}

func TestFlexUnmarshal_PlayerInfoNestedStats(t *testing.T) {
	input := `{"player_key": "42", "player_name": "C. Player", "player_country": "Spain", "stats": [{"season": "2023", "matches_won": 10, "matches_lost": 4}]}`

	var p PlayerInfo
	if err := json.Unmarshal([]byte(input), &p); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if p.PlayerKey != 42 {
		t.Errorf("PlayerKey = %d, want 42", p.PlayerKey)
	}
	if len(p.Stats) != 1 || p.Stats[0].MatchesWon != "10" {
		t.Fatalf("Stats = %+v, want one season with matches_won 10", p.Stats)
	}
}

func TestH2HData_EmptyArrayResult(t *testing.T) {
	for _, input := range []string{`[]`, `null`, `{}`} {
		var d H2HData
		if err := json.Unmarshal([]byte(input), &d); err != nil {
			t.Fatalf("%s: failed to unmarshal: %v", input, err)
		}
		if !d.IsEmpty() {
			t.Errorf("%s: IsEmpty = false, want true", input)
		}
	}
}

func TestH2HData_Populated(t *testing.T) {
	input := `{"H2H": [{"event_key": "1", "event_status": "Finished", "event_winner": "Second Player", "event_second_player": "B"}], "firstPlayerResults": [], "secondPlayerResults": [{"event_key": 2}]}`

	var d H2HData
	if err := json.Unmarshal([]byte(input), &d); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(d.H2H) != 1 || d.H2H[0].WinnerName() != "B" {
		t.Errorf("H2H = %+v", d.H2H)
	}
	if len(d.SecondPlayerResults) != 1 {
		t.Errorf("SecondPlayerResults len = %d, want 1", len(d.SecondPlayerResults))
	}
}
