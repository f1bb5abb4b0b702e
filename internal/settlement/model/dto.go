package model

// MemberResultEntry is one member's statistics inside a settlement submission.
type MemberResultEntry struct {
	MemberID      uint `json:"member_id" binding:"required"`
	Goals         int  `json:"goals" binding:"min=0"`
	Assists       int  `json:"assists" binding:"min=0"`
	CleanSheet    bool `json:"clean_sheet"`
	YellowCards   int  `json:"yellow_cards" binding:"min=0"`
	RedCards      int  `json:"red_cards" binding:"min=0"`
	Substitutions int  `json:"substitutions" binding:"min=0"`
	Saves         int  `json:"saves" binding:"min=0"`
}

// SettleMatchRequest submits one team's member results for settlement.
type SettleMatchRequest struct {
	TeamID  uint                `json:"team_id" binding:"required"`
	Results []MemberResultEntry `json:"results" binding:"required,min=1,dive"`
}
