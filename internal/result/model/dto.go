package model

// SubstitutionEntry is one player swap in a team result submission.
type SubstitutionEntry struct {
	OutMemberID uint `json:"out_member_id" binding:"required"`
	InMemberID  uint `json:"in_member_id" binding:"required"`
	Minute      int  `json:"minute" binding:"min=0,max=150"`
}

// RecordTeamResultRequest is one team's aggregate submission for a match.
type RecordTeamResultRequest struct {
	TeamID        uint                `json:"team_id" binding:"required"`
	CornerKicks   int                 `json:"corner_kicks" binding:"min=0"`
	Passes        int                 `json:"passes" binding:"min=0"`
	FreeKicks     int                 `json:"free_kicks" binding:"min=0"`
	PenaltyKicks  int                 `json:"penalty_kicks" binding:"min=0"`
	Goals         int                 `json:"goals" binding:"min=0"`
	Assists       int                 `json:"assists" binding:"min=0"`
	YellowCards   int                 `json:"yellow_cards" binding:"min=0"`
	RedCards      int                 `json:"red_cards" binding:"min=0"`
	Saves         int                 `json:"saves" binding:"min=0"`
	Intercepts    int                 `json:"intercepts" binding:"min=0"`
	Substitutions []SubstitutionEntry `json:"substitutions" binding:"dive"`
}

// RecordPlayerResultRequest is a single member's statistics for a match.
type RecordPlayerResultRequest struct {
	TeamID        uint `json:"team_id" binding:"required"`
	Goals         int  `json:"goals" binding:"min=0"`
	Assists       int  `json:"assists" binding:"min=0"`
	CleanSheet    bool `json:"clean_sheet"`
	YellowCards   int  `json:"yellow_cards" binding:"min=0"`
	RedCards      int  `json:"red_cards" binding:"min=0"`
	Substitutions int  `json:"substitutions" binding:"min=0"`
	Saves         int  `json:"saves" binding:"min=0"`
}
