// Package model provides response models for the statistics module.
package model

// TeamSummaryResponse is a team's settled record plus season-wide member
// aggregates.
type TeamSummaryResponse struct {
	TeamID      uint   `json:"team_id"`
	TeamName    string `json:"team_name"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
	TotalGames  int    `json:"total_games"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	CleanSheets int    `json:"clean_sheets"`
}

// PlayerTotals is one member's season totals across all recorded matches.
type PlayerTotals struct {
	MemberID     uint   `gorm:"column:member_id" json:"member_id"`
	Name         string `gorm:"column:name" json:"name"`
	Appearances  int    `gorm:"column:appearances" json:"appearances"`
	Goals        int    `gorm:"column:goals" json:"goals"`
	Assists      int    `gorm:"column:assists" json:"assists"`
	Saves        int    `gorm:"column:saves" json:"saves"`
	YellowCards  int    `gorm:"column:yellow_cards" json:"yellow_cards"`
	RedCards     int    `gorm:"column:red_cards" json:"red_cards"`
	AttackPoints int    `gorm:"column:attack_points" json:"attack_points"`
}

// RankingEntry is one member's position in a single-metric ranking.
type RankingEntry struct {
	MemberID uint   `json:"member_id"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

// TopPlayersResponse bundles the per-metric top-3 rankings of a team.
type TopPlayersResponse struct {
	TeamID       uint           `json:"team_id"`
	Goals        []RankingEntry `json:"goals"`
	Assists      []RankingEntry `json:"assists"`
	Appearances  []RankingEntry `json:"appearances"`
	Saves        []RankingEntry `json:"saves"`
	AttackPoints []RankingEntry `json:"attack_points"`
}

// PlayersResponse lists every member of a team with season totals.
type PlayersResponse struct {
	TeamID  uint           `json:"team_id"`
	Players []PlayerTotals `json:"players"`
	Total   int            `json:"total"`
}

// PlayerCards is one member's accumulated bookings.
type PlayerCards struct {
	MemberID    uint   `gorm:"column:member_id" json:"member_id"`
	Name        string `gorm:"column:name" json:"name"`
	YellowCards int    `gorm:"column:yellow_cards" json:"yellow_cards"`
	RedCards    int    `gorm:"column:red_cards" json:"red_cards"`
}

// CardsResponse is a team's booking summary.
type CardsResponse struct {
	TeamID      uint          `json:"team_id"`
	YellowCards int           `json:"yellow_cards"`
	RedCards    int           `json:"red_cards"`
	Players     []PlayerCards `json:"players"`
}
