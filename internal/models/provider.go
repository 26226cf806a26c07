package models

import (
	"bytes"
	"encoding/json"
)

// Winner slot values used by the provider in event_winner
const (
	FirstPlayerSlot  = "First Player"
	SecondPlayerSlot = "Second Player"
)

// StatusFinished is the event_status of a completed match
const StatusFinished = "Finished"

// League identifiers accepted by get_standings
const (
	LeagueATP = "ATP"
	LeagueWTA = "WTA"
)

// MatchRecord is one historical match between two players as returned by get_H2H
type MatchRecord struct {
	EventKey         int64  `json:"event_key"`
	EventDate        string `json:"event_date"`
	FirstPlayer      string `json:"event_first_player"`
	FirstPlayerKey   int64  `json:"first_player_key"`
	SecondPlayer     string `json:"event_second_player"`
	SecondPlayerKey  int64  `json:"second_player_key"`
	FinalResult      string `json:"event_final_result"`
	Winner           string `json:"event_winner"` // "First Player" or "Second Player"
	Status           string `json:"event_status"`
	EventType        string `json:"event_type_type"`
	TournamentName   string `json:"tournament_name"`
	TournamentRound  string `json:"tournament_round"`
	TournamentSeason string `json:"tournament_season"`
}

// IsFinished reports whether the match is completed
func (m MatchRecord) IsFinished() bool {
	return m.Status == StatusFinished
}

// WinnerName resolves the winner slot to the player's name
func (m MatchRecord) WinnerName() string {
	switch m.Winner {
	case FirstPlayerSlot:
		return m.FirstPlayer
	case SecondPlayerSlot:
		return m.SecondPlayer
	}
	return ""
}

// WinnerName resolves the winner slot to the player's name
func (p PlayerResult) WinnerName() string {
	switch p.Winner {
	case FirstPlayerSlot:
		return p.FirstPlayer
	case SecondPlayerSlot:
		return p.SecondPlayer
	}
	return ""
}

// PlayerResult is one entry of a player's own recent match history
type PlayerResult struct {
	EventKey        int64  `json:"event_key"`
	EventDate       string `json:"event_date"`
	FirstPlayer     string `json:"event_first_player"`
	SecondPlayer    string `json:"event_second_player"`
	FinalResult     string `json:"event_final_result"`
	Winner          string `json:"event_winner"`
	Status          string `json:"event_status"`
	EventType       string `json:"event_type_type"`
	TournamentName  string `json:"tournament_name"`
	TournamentRound string `json:"tournament_round"`
}

// H2HData is the result payload of get_H2H
type H2HData struct {
	H2H                 []MatchRecord  `json:"H2H"`
	FirstPlayerResults  []PlayerResult `json:"firstPlayerResults"`
	SecondPlayerResults []PlayerResult `json:"secondPlayerResults"`
}

// IsEmpty reports whether the payload carries no matches at all
func (d H2HData) IsEmpty() bool {
	return len(d.H2H) == 0 && len(d.FirstPlayerResults) == 0 && len(d.SecondPlayerResults) == 0
}

// UnmarshalJSON accepts an empty array in place of the result object,
// which is what the provider sends for pairs that never met.
func (d *H2HData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null")) {
		*d = H2HData{}
		return nil
	}
	type alias H2HData
	return json.Unmarshal(trimmed, (*alias)(d))
}

// SeasonStat is one season/type bucket of a player's statistics.
// Numeric values are kept as provider text; see logic.ParseCount.
type SeasonStat struct {
	Season      string `json:"season"`
	Type        string `json:"type"`
	Rank        string `json:"rank"`
	Titles      string `json:"titles"`
	MatchesWon  string `json:"matches_won"`
	MatchesLost string `json:"matches_lost"`
	HardWon     string `json:"hard_won"`
	HardLost    string `json:"hard_lost"`
	ClayWon     string `json:"clay_won"`
	ClayLost    string `json:"clay_lost"`
	GrassWon    string `json:"grass_won"`
	GrassLost   string `json:"grass_lost"`
}

// PlayerInfo is one entry of get_players
type PlayerInfo struct {
	PlayerKey     int64        `json:"player_key"`
	PlayerName    string       `json:"player_name"`
	PlayerCountry string       `json:"player_country"`
	PlayerBday    string       `json:"player_bday"`
	PlayerLogo    string       `json:"player_logo"`
	Stats         []SeasonStat `json:"stats"`
}

// Standing is one row of get_standings
type Standing struct {
	Place     string `json:"place"`
	Player    string `json:"player"`
	PlayerKey int64  `json:"player_key"`
	League    string `json:"league"`
	Movement  string `json:"movement"`
	Country   string `json:"country"`
	Points    string `json:"points"`
}
